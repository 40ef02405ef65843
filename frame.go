// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package guard

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// frameCapacity is the bounded capacity of the frame's outcome queue.
// A frame carries exactly one Outcome back to the caller; 2 is the
// minimum capacity lfq.SPSC accepts (Init panics below it).
const frameCapacity = 2

// frame is an isolated execution context: a dedicated goroutine runs the
// guarded operation and hands the single Outcome back over a bounded
// lock-free SPSC queue. The frame goroutine is the sole producer and the
// caller's goroutine the sole consumer.
type frame struct {
	outQ    lfq.SPSC[any]
	outSlot any
	serial  Serial
}

// newFrame allocates a frame and assigns it the next serial.
func newFrame() *frame {
	f := &frame{serial: nextSerial()}
	f.outQ.Init(frameCapacity)
	return f
}

// post publishes the frame's Outcome. Retries on iox.ErrWouldBlock with
// adaptive backoff; with one producer and frameCapacity 1 the queue can
// refuse at most transiently.
func (f *frame) post(out any) {
	f.outSlot = out
	var bo iox.Backoff
	for f.outQ.Enqueue(&f.outSlot) != nil {
		bo.Wait()
	}
}

// wait blocks until the frame's Outcome is available, backing off on
// iox.ErrWouldBlock with iox.Backoff.
func (f *frame) wait() any {
	var bo iox.Backoff
	for {
		v, err := f.outQ.Dequeue()
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// ClassifyIsolated runs op inside a guarded frame on a dedicated
// goroutine and folds the result into an [Outcome], like [Classify] with
// a genuinely separate execution frame. The caller blocks until the
// frame completes or aborts; a panic inside op is intercepted on the
// frame goroutine and never escapes it. The Abort payload carries the
// frame serial.
//
// op must be safe to call from another goroutine; the executor imposes
// nothing beyond that.
func ClassifyIsolated[E, R any](op Operation[E, R]) Outcome[E, R] {
	f := newFrame()
	go func() {
		f.post(classifyOn(f.serial, op))
	}()
	return f.wait().(Outcome[E, R])
}

// ExecuteIsolated runs op on an isolated frame and dispatches the
// outcome like [Execute]. Handlers run on the calling goroutine after
// the frame completes, never on the frame goroutine.
func ExecuteIsolated[E, R any](op Operation[E, R], onError func(E) R, onAbort func(*Abort) R) R {
	return dispatch(ClassifyIsolated(op), onError, onAbort)
}
