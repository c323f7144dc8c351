package async

import "errors"

// ErrTimeout is returned by AwaitWithTimeout when the wait expires before
// the computation completes.
var ErrTimeout = errors.New("async: timed out awaiting future")
