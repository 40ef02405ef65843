// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package guard_test

import (
	"code.hybscloud.com/guard"
	"code.hybscloud.com/kont"
)

// decrement is the reference boundary operation over an integer input:
// success for positive inputs, a recoverable error at or below zero,
// abnormal termination at 5.
func decrement(i int) kont.Either[string, int] {
	switch {
	case i == 5:
		panic("refusing to decrement 5")
	case i <= 0:
		return kont.Left[string, int]("already <= 0, can't go lower")
	default:
		return kont.Right[string, int](i - 1)
	}
}

// decrementOp closes over one input, producing a single-use Operation.
func decrementOp(i int) guard.Operation[string, int] {
	return func() kont.Either[string, int] { return decrement(i) }
}

// sentinelError and sentinelAbort are the fixed -1 handlers used by most
// scenarios, mirroring a degraded-but-valid boundary result.
func sentinelError(string) int       { return -1 }
func sentinelAbort(*guard.Abort) int { return -1 }

// handlerTap counts handler invocations to assert dispatch exclusivity.
type handlerTap struct {
	errs   int
	aborts int
}

func (h *handlerTap) onError(string) int {
	h.errs++
	return -1
}

func (h *handlerTap) onAbort(*guard.Abort) int {
	h.aborts++
	return -1
}
