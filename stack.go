// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package morph

// Iterative evaluation. [Hylo] recurses on the call stack, so its depth
// limit is the goroutine stack. StackHylo evaluates the same traversal with
// an explicit heap-allocated work stack, trading the Functor witness for a
// pair of witnesses that enumerate and reassemble a shape's elements.

// Split enumerates the elements of one level of structure, in the shape's
// canonical order. A base shape returns an empty (or nil) slice.
type Split[FA, A any] func(FA) []A

// Rebuild reassembles one level of structure from its original shape and
// the per-element results, in the same order Split produced them.
type Rebuild[FA, B, FB any] func(FA, []B) FB

// task is one suspended level of a StackHylo evaluation: the expanded
// shape, its remaining child seeds, and the results collected so far.
type task[A, B, FA any] struct {
	level   FA
	seeds   []A
	next    int
	results []B
}

// StackHylo returns a traversal observably equivalent to
// Hylo(fmap, alg, coalg) for witnesses that agree on element order, but
// evaluated iteratively in post order: memory use is proportional to the
// expansion depth on the heap instead of the call stack.
func StackHylo[A, B, FA, FB any](split Split[FA, A], rebuild Rebuild[FA, B, FB], alg Algebra[FB, B], coalg Coalgebra[A, FA]) func(A) B {
	return func(a A) B {
		push := func(stack []*task[A, B, FA], seed A) []*task[A, B, FA] {
			level := coalg(seed)
			seeds := split(level)
			return append(stack, &task[A, B, FA]{
				level:   level,
				seeds:   seeds,
				results: make([]B, 0, len(seeds)),
			})
		}
		stack := push(nil, a)
		for {
			t := stack[len(stack)-1]
			if t.next < len(t.seeds) {
				seed := t.seeds[t.next]
				t.next++
				stack = push(stack, seed)
				continue
			}
			b := alg(rebuild(t.level, t.results))
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return b
			}
			parent := stack[len(stack)-1]
			parent.results = append(parent.results, b)
		}
	}
}
