package bezkit

import (
	"iter"
	"math"
)

const splitAccuracy = 1e-6

// SplitArclen cuts every subpath into pieces of arc length l. Each piece is
// yielded as the run of (sub)segments it consists of; the last piece of a
// subpath may be shorter. A non-positive or non-finite l yields every
// subpath whole.
func SplitArclen(seq iter.Seq[PathSegment], l float64) iter.Seq[[]PathSegment] {
	return func(yield func([]PathSegment) bool) {
		for sub := range subpaths(seq) {
			if !splitPieces(sub, l, 0, yield) {
				return
			}
		}
	}
}

// SplitN cuts every subpath into n pieces of equal arc length.
func SplitN(seq iter.Seq[PathSegment], n int) iter.Seq[[]PathSegment] {
	return func(yield func([]PathSegment) bool) {
		for sub := range subpaths(seq) {
			var total float64
			for _, seg := range sub {
				total += seg.Arclen(splitAccuracy)
			}
			l := total / float64(max(n, 1))
			// Rounding could otherwise leave a sliver as piece n+1.
			if !splitPieces(sub, l, n, yield) {
				return
			}
		}
	}
}

// subpaths groups segments into runs that connect end to start.
func subpaths(seq iter.Seq[PathSegment]) iter.Seq[[]PathSegment] {
	return func(yield func([]PathSegment) bool) {
		var cur []PathSegment
		for seg := range seq {
			if len(cur) > 0 && cur[len(cur)-1].End() != seg.Start() {
				if !yield(cur) {
					return
				}
				cur = nil
			}
			cur = append(cur, seg)
		}
		if len(cur) > 0 {
			yield(cur)
		}
	}
}

// splitPieces emits pieces of length l. If limit is positive the final
// piece absorbs everything after limit-1 cuts.
func splitPieces(sub []PathSegment, l float64, limit int, yield func([]PathSegment) bool) bool {
	if !(l > 0) || math.IsInf(l, 0) {
		return yield(sub)
	}
	var piece []PathSegment
	remaining := l
	count := 1
	for _, seg := range sub {
		for {
			a := seg.Arclen(splitAccuracy)
			if a < remaining || (limit > 0 && count == limit) {
				piece = append(piece, seg)
				remaining -= a
				break
			}
			t := seg.InvArclen(remaining, splitAccuracy)
			if !yield(append(piece, seg.Subsegment(0, t))) {
				return false
			}
			piece, remaining = nil, l
			count++
			if t >= 1 {
				break
			}
			seg = seg.Subsegment(t, 1)
		}
	}
	if len(piece) > 0 {
		return yield(piece)
	}
	return true
}
