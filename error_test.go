// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package guard_test

import (
	"testing"

	"code.hybscloud.com/guard"
	"code.hybscloud.com/kont"
)

func TestExecuteErrorSuccess(t *testing.T) {
	// Cont-world success: completion value passes through
	var tap handlerTap
	protocol := kont.Bind(kont.Pure(20), func(n int) kont.Eff[int] {
		return kont.Pure(n + 1)
	})
	got := guard.ExecuteError(protocol, tap.onError, tap.onAbort)
	if got != 21 {
		t.Fatalf("ExecuteError got %d, want %d", got, 21)
	}
	if tap.errs != 0 || tap.aborts != 0 {
		t.Fatalf("handlers invoked on success: errs=%d aborts=%d", tap.errs, tap.aborts)
	}
}

func TestExecuteErrorThrow(t *testing.T) {
	// Cont-world throw routes to the error handler
	got := guard.ExecuteError(kont.ThrowError[string, int]("boom"),
		func(e string) int {
			if e != "boom" {
				t.Fatalf("error value got %q, want %q", e, "boom")
			}
			return -1
		},
		sentinelAbort,
	)
	if got != -1 {
		t.Fatalf("ExecuteError got %d, want %d", got, -1)
	}
}

func TestExecuteErrorPanicDuringEvaluation(t *testing.T) {
	// A panic inside the computation routes to the abort handler,
	// not the error handler
	var tap handlerTap
	protocol := kont.Bind(kont.Pure(1), func(int) kont.Eff[int] {
		panic("effect body blew up")
	})
	got := guard.ExecuteError(protocol, tap.onError, tap.onAbort)
	if got != -1 {
		t.Fatalf("ExecuteError got %d, want %d", got, -1)
	}
	if tap.errs != 0 || tap.aborts != 1 {
		t.Fatalf("dispatch not exclusive: errs=%d aborts=%d", tap.errs, tap.aborts)
	}
}

func TestClassifyErrorCatchRecovery(t *testing.T) {
	// CatchError recovery upstream of the guard classifies as Success
	protocol := kont.CatchError(
		kont.ThrowError[string, string]("fail"),
		func(e string) kont.Eff[string] {
			return kont.Pure("recovered: " + e)
		},
	)
	out := guard.ClassifyError[string](protocol)
	v, ok := out.GetValue()
	if !ok || v != "recovered: fail" {
		t.Fatalf("GetValue got (%q, %v), want (%q, true)", v, ok, "recovered: fail")
	}
}

func TestExecuteErrorExprSuccess(t *testing.T) {
	var tap handlerTap
	got := guard.ExecuteErrorExpr(kont.ExprReturn(7), tap.onError, tap.onAbort)
	if got != 7 {
		t.Fatalf("ExecuteErrorExpr got %d, want %d", got, 7)
	}
	if tap.errs != 0 || tap.aborts != 0 {
		t.Fatalf("handlers invoked on success: errs=%d aborts=%d", tap.errs, tap.aborts)
	}
}

func TestExecuteErrorExprThrow(t *testing.T) {
	got := guard.ExecuteErrorExpr(kont.ExprThrowError[string, int]("expr-boom"),
		func(e string) int {
			if e != "expr-boom" {
				t.Fatalf("error value got %q, want %q", e, "expr-boom")
			}
			return -1
		},
		sentinelAbort,
	)
	if got != -1 {
		t.Fatalf("ExecuteErrorExpr got %d, want %d", got, -1)
	}
}

func TestClassifyErrorExprThrow(t *testing.T) {
	out := guard.ClassifyErrorExpr[string](kont.ExprThrowError[string, int]("left"))
	e, ok := out.GetErr()
	if !ok || e != "left" {
		t.Fatalf("GetErr got (%q, %v), want (%q, true)", e, ok, "left")
	}
}
