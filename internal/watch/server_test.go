package watch_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enetx/breakout/internal/game"
	"github.com/enetx/breakout/internal/logger"
	"github.com/enetx/breakout/internal/watch"
)

func setup(t *testing.T) (*game.Session, *watch.Hub, *httptest.Server) {
	t.Helper()

	log := logger.Discard()
	s, err := game.New(game.DefaultConfig(), game.WithLogger(log))
	require.NoError(t, err)

	hub := watch.NewHub(watch.WithLogger(log))
	watch.Attach(hub, "app", s.App())
	watch.Attach(hub, "round", s.Round())

	srv := httptest.NewServer(watch.NewServer(hub, log).Handler())
	t.Cleanup(srv.Close)

	return s, hub, srv
}

func TestServer_Status(t *testing.T) {
	s, _, srv := setup(t)
	s.Start()

	resp, err := http.Get(srv.URL + "/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var st watch.Status
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, "MainMenu", st.Machines["app"].State)
	assert.Equal(t, "Idle", st.Machines["round"].State)
	require.NotNil(t, st.Machines["app"].Last)
	assert.Equal(t, "Initialize", st.Machines["app"].Last.From)
}

func TestServer_DOT(t *testing.T) {
	_, _, srv := setup(t)

	resp, err := http.Get(srv.URL + "/dot/round")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(string(body), "digraph FSM {"))
	assert.Contains(t, string(body), `"Playing" -> "Dead" [label=" announce\nafter "];`)

	resp, err = http.Get(srv.URL + "/dot/paddle")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_Events(t *testing.T) {
	s, hub, srv := setup(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	s.Start()
	s.Handle(game.CmdPlay)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var first, second watch.Record
	require.NoError(t, conn.ReadJSON(&first))
	require.NoError(t, conn.ReadJSON(&second))

	assert.Equal(t, "app", first.Machine)
	assert.Equal(t, "Initialize", first.From)
	assert.Equal(t, "MainMenu", first.To)
	assert.Equal(t, "SetupNewGame", second.To)
	assert.Negative(t, first.ID.Compare(second.ID))

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 5*time.Millisecond)
}
