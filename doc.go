// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package guard executes fallible operations behind a boundary that no
// failure may cross.
//
// A boundary is a point where control transfers into a caller that cannot
// accept structured unwinding: an exported entry point invoked from a
// foreign runtime, a callback registered with a C library. Every call that
// enters the executor returns a plain value of the boundary result type,
// whatever happens inside. Success passes through, a recoverable error
// ([code.hybscloud.com/kont.Either] Left) is converted by the error
// handler, and a runtime panic is intercepted and converted by the abort
// handler.
//
// # Architecture
//
//   - Classification: [Classify] runs an [Operation] inside a guarded frame
//     and folds the result into a three-way [Outcome]: Success, Errored, or Aborted.
//   - Dispatch: [Execute] maps an Outcome to the boundary result type via the
//     caller-supplied handler pair. Exactly one of {passthrough, error handler,
//     abort handler} determines the result.
//   - Abort payload: an intercepted panic is wrapped as [*Abort] and probed
//     through optional typed views ([Abort.Message], [Abort.Err], [As]) rather
//     than bare assertions. The aborting goroutine stack is captured at
//     interception.
//   - Isolation: [ClassifyIsolated] and [ExecuteIsolated] run the operation on
//     a dedicated frame goroutine. The Outcome crosses back over a bounded
//     lock-free SPSC queue via [code.hybscloud.com/lfq], waited on with
//     adaptive backoff ([code.hybscloud.com/iox.Backoff]), without channels.
//
// # API Topologies
//
//   - Closure-world: [Classify] and [Execute] over func() kont.Either[E, R].
//   - Cont-world: [ClassifyError] and [ExecuteError] evaluate a [kont.Eff]
//     computation with the Error effect ([kont.RunError]) inside the guard.
//   - Expr-world: [ClassifyErrorExpr] and [ExecuteErrorExpr] for
//     defunctionalized computations ([kont.RunErrorExpr]).
//   - Entry points: [Bind] fixes a handler pair for reuse across calls;
//     [Func] and [Func2] build boundary-exported function shapes directly.
//
// # Contract
//
// The operation's success type and the boundary result type are the same
// type R. Handlers must be total over their domains and must not panic; a
// handler panic is outside this layer and propagates as if the guard were
// absent. An abnormal termination always wins classification: a panic
// raised while producing the error value is Aborted, never Errored.
//
// # Example
//
//	dec := func(i int) kont.Either[string, int] {
//		if i <= 0 {
//			return kont.Left[string, int]("already <= 0")
//		}
//		return kont.Right[string, int](i - 1)
//	}
//	exported := guard.Func(dec,
//		func(e string) int { return -1 },
//		func(a *guard.Abort) int { return -1 },
//	)
//	exported(2) // 1
//	exported(0) // -1
package guard
