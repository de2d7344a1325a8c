package parser

import "github.com/coregx/numplan/matcher"

// rank maps a matcher.Result onto the reconciliation table's strength
// index: 0 (MATCHED, strongest) .. 4 (INVALID, weakest). matcher.Result
// already orders MATCHED highest by iota value, so this is just a
// reversal.
func rank(r matcher.Result) int {
	return int(matcher.MATCHED) - int(r)
}

// reconcile applies the national/international reconciliation table: if
// neither path produced a result, ok is false. If exactly one did, it
// wins outright. If both did, the international result wins only when
// it is at least as strong as the national one AND looksInternational
// reports the input strongly suggests international format; otherwise
// the national result wins.
func reconcile(national, international *Result, looksInternational func() bool) (Result, bool) {
	switch {
	case national == nil && international == nil:
		return Result{}, false
	case national == nil:
		return *international, true
	case international == nil:
		return *national, true
	}

	if rank(international.Match) <= rank(national.Match) {
		if looksInternational() {
			return *international, true
		}
	}
	return *national, true
}
