package device

import "termui/lifecycle"

// Device is an input backend and screen driving a widget tree.
type Device interface {
	// Run handles input until the user quits or lc is stopped.
	Run(lc *lifecycle.Lifecycle)
}
