package ui

// helpPagerMsg reports that the help pager has closed
type helpPagerMsg struct {
	err error
}

// ShutdownMsg asks the model to quit, e.g. on SIGTERM. It takes the same
// path as the quit keys so pending timers are cancelled.
type ShutdownMsg struct{}
