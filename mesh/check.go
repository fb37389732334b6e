// SPDX-License-Identifier: MIT

package mesh

import "fmt"

// check logs msg with args when ok is false and, under WithStrictChecks,
// panics. It always returns ok so call sites read
//
//	if !net.check(cond, "...") { return sentinel }
func (net *Network[N]) check(ok bool, msg string, args ...any) bool {
	if ok {
		return true
	}
	net.logger.Error(msg, args...)
	if net.strict {
		panic(fmt.Sprintf("mesh: check failed: %s", msg))
	}

	return false
}
