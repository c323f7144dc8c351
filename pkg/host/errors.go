package host

import "errors"

var (
	// ErrNoContext means the host could not determine the current context,
	// typically because the user is not focused on any chat window.
	ErrNoContext = errors.New("host: no current context")

	// ErrContextClosed is returned by MemoryHost context operations after
	// the context has been closed.
	ErrContextClosed = errors.New("host: context is closed")
)
