package game

// Command is a player input, already decoded from the device.
type Command int

const (
	CmdNone Command = iota
	CmdPlay
	CmdQuit
	CmdLaunch
	CmdLeft
	CmdRight
	CmdExit
)

func (c Command) String() string {
	switch c {
	case CmdPlay:
		return "play"
	case CmdQuit:
		return "quit"
	case CmdLaunch:
		return "launch"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdExit:
		return "exit"
	default:
		return "none"
	}
}
