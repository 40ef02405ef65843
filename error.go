// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package guard

import (
	"code.hybscloud.com/kont"
)

// ClassifyError evaluates a Cont-world computation with the Error effect
// inside the guarded frame. Throw classifies as Errored, normal
// completion as Success, and a panic during evaluation as Aborted.
func ClassifyError[E, R any](protocol kont.Eff[R]) Outcome[E, R] {
	return classifyOn(0, func() kont.Either[E, R] {
		return kont.RunError[E, R](protocol)
	})
}

// ExecuteError evaluates a Cont-world computation with the Error effect
// inside the guarded frame and dispatches the outcome: Throw routes to
// onError, a panic during evaluation routes to onAbort, and the
// completion value passes through untouched.
func ExecuteError[E, R any](protocol kont.Eff[R], onError func(E) R, onAbort func(*Abort) R) R {
	return dispatch(ClassifyError[E](protocol), onError, onAbort)
}

// ClassifyErrorExpr evaluates an Expr-world computation with the Error
// effect inside the guarded frame. Throw classifies as Errored, normal
// completion as Success, and a panic during evaluation as Aborted.
func ClassifyErrorExpr[E, R any](protocol kont.Expr[R]) Outcome[E, R] {
	return classifyOn(0, func() kont.Either[E, R] {
		return kont.RunErrorExpr[E, R](protocol)
	})
}

// ExecuteErrorExpr evaluates an Expr-world computation with the Error
// effect inside the guarded frame and dispatches the outcome, like
// [ExecuteError] for defunctionalized computations.
func ExecuteErrorExpr[E, R any](protocol kont.Expr[R], onError func(E) R, onAbort func(*Abort) R) R {
	return dispatch(ClassifyErrorExpr[E](protocol), onError, onAbort)
}
