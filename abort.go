// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package guard

import (
	"fmt"
	"runtime/debug"
)

// Abort is the opaque payload of an abnormal termination: the value the
// operation panicked with, the aborting goroutine's stack captured at
// interception, and the serial of the frame the operation ran on
// (0 for in-place execution).
//
// The payload is dynamically typed. Instead of asserting on [Abort.Value]
// directly, probe it through the optional typed views [Abort.Message],
// [Abort.Err], and [As], which report whether the interpretation holds.
type Abort struct {
	value  any
	stack  []byte
	serial Serial
}

// newAbort wraps a recovered panic value.
// Must be called from the deferred interceptor while the panic is still
// unwinding, so the captured stack includes the abort site.
func newAbort(v any, s Serial) *Abort {
	return &Abort{value: v, stack: debug.Stack(), serial: s}
}

// Value returns the raw panic value. Its dynamic type is whatever the
// operation panicked with; prefer the typed probes where possible.
func (a *Abort) Value() any {
	return a.value
}

// Stack returns the aborting goroutine's stack, captured at interception.
func (a *Abort) Stack() []byte {
	return a.stack
}

// Serial returns the serial of the isolated frame the operation aborted
// on, or 0 if the operation ran in place on the caller's goroutine.
func (a *Abort) Serial() Serial {
	return a.serial
}

// Message returns the payload as a textual message and true if the
// operation panicked with a string.
func (a *Abort) Message() (string, bool) {
	s, ok := a.value.(string)
	return s, ok
}

// Err returns the payload as an error and true if the panic value
// implements error. Covers panics raised with error values as well as
// runtime errors such as nil dereference or panic(nil)
// (*runtime.PanicNilError).
func (a *Abort) Err() (error, bool) {
	err, ok := a.value.(error)
	return err, ok
}

// String returns a best-effort description of the abort for diagnostics.
func (a *Abort) String() string {
	if s, ok := a.Message(); ok {
		return "abort: " + s
	}
	if err, ok := a.Err(); ok {
		return "abort: " + err.Error()
	}
	return fmt.Sprintf("abort: %v", a.value)
}

// As probes the payload as a T, returning the typed view and whether the
// interpretation holds. It never panics on a mismatch.
func As[T any](a *Abort) (T, bool) {
	v, ok := a.value.(T)
	return v, ok
}
