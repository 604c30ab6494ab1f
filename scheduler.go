package pagectl

import "time"

// RealScheduler fires callbacks on wall-clock time.
// Under js/wasm the callback runs on the browser event loop.
type RealScheduler struct{}

func (RealScheduler) AfterFunc(ms int, fn func()) Timer {
	return time.AfterFunc(time.Duration(ms)*time.Millisecond, fn)
}
