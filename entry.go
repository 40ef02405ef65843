// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package guard

import (
	"code.hybscloud.com/kont"
)

// Bind fixes a handler pair once and returns a long-lived executor for
// it. The returned function is safe for concurrent use by multiple
// goroutines: each call is an independent guarded invocation and no
// state is shared between calls beyond the captured handlers.
func Bind[E, R any](onError func(E) R, onAbort func(*Abort) R) func(Operation[E, R]) R {
	return func(op Operation[E, R]) R {
		return Execute(op, onError, onAbort)
	}
}

// Func builds a boundary-exported entry point from a one-argument
// fallible function: the returned func(A) R is total over A and suitable
// for handing to a caller that cannot accept unwinding. The handler pair
// is captured once and reused for every call.
func Func[A, E, R any](f func(A) kont.Either[E, R], onError func(E) R, onAbort func(*Abort) R) func(A) R {
	return func(a A) R {
		return Execute(func() kont.Either[E, R] { return f(a) }, onError, onAbort)
	}
}

// Func2 builds a boundary-exported entry point from a two-argument
// fallible function, like [Func].
func Func2[A, B, E, R any](f func(A, B) kont.Either[E, R], onError func(E) R, onAbort func(*Abort) R) func(A, B) R {
	return func(a A, b B) R {
		return Execute(func() kont.Either[E, R] { return f(a, b) }, onError, onAbort)
	}
}
