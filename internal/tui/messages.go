package tui

type pollMsg struct{}

// sessionClosedMsg is sent once the session's Done channel is closed.
type sessionClosedMsg struct{}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
