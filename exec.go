// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package guard

import (
	"code.hybscloud.com/kont"
)

// Operation is a zero-argument fallible computation: Right(R) on success,
// Left(E) on a recoverable error. The success type and the boundary
// result type are the same type R.
//
// An Operation is consumed by a single guarded invocation and must be
// callable without external synchronization. When run on an isolated
// frame it is called from the frame goroutine.
type Operation[E, R any] func() kont.Either[E, R]

// Classify runs op inside a guarded frame on the calling goroutine and
// folds the result into an [Outcome]. A panic raised anywhere inside op
// is intercepted and classified as Aborted; it always takes precedence
// over recoverable-error classification.
func Classify[E, R any](op Operation[E, R]) Outcome[E, R] {
	return classifyOn(0, op)
}

// classifyOn is the guarded frame shared by in-place and isolated
// execution. serial identifies the isolated frame, 0 for in place.
func classifyOn[E, R any](serial Serial, op Operation[E, R]) (out Outcome[E, R]) {
	defer func() {
		if v := recover(); v != nil {
			out = Aborted[E, R](newAbort(v, serial))
		}
	}()
	e := op()
	if left, ok := e.GetLeft(); ok {
		return Errored[E, R](left)
	}
	right, _ := e.GetRight()
	return Success[E, R](right)
}

// Execute runs op inside a guarded frame and dispatches the outcome:
// a success value is returned untouched, a recoverable error is converted
// by onError, an intercepted panic is converted by onAbort. Exactly one
// of the three paths determines the result; no failure of op escapes.
//
// Handlers run on the calling goroutine and must not panic. A handler
// panic is outside this layer and propagates to the caller unguarded.
func Execute[E, R any](op Operation[E, R], onError func(E) R, onAbort func(*Abort) R) R {
	return dispatch(Classify(op), onError, onAbort)
}

// dispatch folds an Outcome into the boundary result type.
func dispatch[E, R any](out Outcome[E, R], onError func(E) R, onAbort func(*Abort) R) R {
	switch out.kind {
	case outcomeErrored:
		return onError(out.err)
	case outcomeAborted:
		return onAbort(out.abort)
	default:
		return out.value
	}
}
