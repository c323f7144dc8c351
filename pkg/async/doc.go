// Package async provides a small generic Future for running a computation
// on its own goroutine and observing its completion.
//
// The dispatch core hands every translation to Async and forgets about it;
// the continuation is delivered elsewhere. The returned Future exists so
// that callers who do care about completion, like tests synchronizing on an
// in-flight translation, can Await it without polling.
//
// # Usage
//
//	fut := async.Async(ctx, job, func(ctx context.Context, j Job) (Result, error) {
//		return work(ctx, j)
//	})
//	// elsewhere:
//	res, err := fut.Await()
//
// If the context is already cancelled when Async is called, the function is
// never invoked and the Future completes with the context error.
package async
