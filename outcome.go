// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package guard

// outcomeKind tags the three classification results of a guarded call.
type outcomeKind uint8

const (
	outcomeSuccess outcomeKind = iota
	outcomeErrored
	outcomeAborted
)

// Outcome is the three-way classification of one guarded invocation:
// Success(R), Errored(E), or Aborted(*Abort). It is transient, created
// and consumed within a single invocation; callers on the far side of
// the boundary only ever observe the dispatched result value.
type Outcome[E, R any] struct {
	kind  outcomeKind
	value R
	err   E
	abort *Abort
}

// Success creates an Outcome for an operation that completed with value v.
func Success[E, R any](v R) Outcome[E, R] {
	return Outcome[E, R]{kind: outcomeSuccess, value: v}
}

// Errored creates an Outcome for an operation that completed with
// recoverable error e.
func Errored[E, R any](e E) Outcome[E, R] {
	return Outcome[E, R]{kind: outcomeErrored, err: e}
}

// Aborted creates an Outcome for an operation that terminated abnormally
// with payload a.
func Aborted[E, R any](a *Abort) Outcome[E, R] {
	return Outcome[E, R]{kind: outcomeAborted, abort: a}
}

// IsSuccess reports whether the operation completed with a success value.
func (o Outcome[E, R]) IsSuccess() bool {
	return o.kind == outcomeSuccess
}

// IsError reports whether the operation completed with a recoverable error.
func (o Outcome[E, R]) IsError() bool {
	return o.kind == outcomeErrored
}

// IsAborted reports whether the operation terminated abnormally.
func (o Outcome[E, R]) IsAborted() bool {
	return o.kind == outcomeAborted
}

// GetValue returns the success value and true if the outcome is Success.
func (o Outcome[E, R]) GetValue() (R, bool) {
	return o.value, o.kind == outcomeSuccess
}

// GetErr returns the recoverable error and true if the outcome is Errored.
func (o Outcome[E, R]) GetErr() (E, bool) {
	return o.err, o.kind == outcomeErrored
}

// GetAbort returns the abort payload and true if the outcome is Aborted.
func (o Outcome[E, R]) GetAbort() (*Abort, bool) {
	return o.abort, o.kind == outcomeAborted
}

// MatchOutcome folds an Outcome into a single value of type T.
// Exactly one of the three branches runs.
func MatchOutcome[E, R, T any](o Outcome[E, R], onSuccess func(R) T, onError func(E) T, onAbort func(*Abort) T) T {
	switch o.kind {
	case outcomeErrored:
		return onError(o.err)
	case outcomeAborted:
		return onAbort(o.abort)
	default:
		return onSuccess(o.value)
	}
}
