// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package morph

// Core hylomorphism engine.
//
// A hylomorphism fuses an unfold (Coalgebra) and a fold (Algebra) into a
// single traversal: the intermediate recursive structure is never built.
// All other schemes in this package are re-parameterizations of [Hylo].

// Algebra reduces one level of structure filled with results into a single
// result. FB is the concrete Go type of the one-level shape F instantiated
// at the result type B, e.g. Step[int, B] or TreeF[V, B].
type Algebra[FB, B any] func(FB) B

// Coalgebra expands one value into one level of structure filled with
// smaller values. FA is the concrete Go type of the one-level shape F
// instantiated at the seed type A.
type Coalgebra[A, FA any] func(A) FA

// MapFunc is the Functor capability of a one-level shape F, pinned at the
// two element types the recursion converts between: it applies a
// transformation to every element held in FA, producing the same shape FB.
//
// Go has no higher-kinded type parameters, so the shape F never appears on
// its own; the witness is what ties FA and FB together as "the same F".
// Witnesses must be law-abiding: mapping the identity is the identity, and
// mapping g after f equals mapping their composition. The laws are a caller
// contract — the engine assumes them and cannot check them.
type MapFunc[FA, FB, A, B any] func(FA, func(A) B) FB

// Hylo returns the fused unfold-then-fold traversal of alg and coalg:
// expand a one level via coalg, recurse on every element of the produced
// shape, then reduce the result shape via alg.
//
// Termination is governed solely by coalg: if it never reaches a base
// shape (one with no elements), the returned function does not return.
// Nothing is cached; revisiting equal seeds recomputes them. Recursion
// depth equals the depth of the expansion tree — for inputs deeper than
// the call stack can carry, see [StackHylo].
func Hylo[A, B, FA, FB any](fmap MapFunc[FA, FB, A, B], alg Algebra[FB, B], coalg Coalgebra[A, FA]) func(A) B {
	// h must be a named recursive closure: it passes itself to fmap.
	var h func(A) B
	h = func(a A) B {
		return alg(fmap(coalg(a), h))
	}
	return h
}

// ComposeMap builds the Functor witness of a composed shape F∘G from the
// witnesses of F (outer, mapping over G-shaped elements) and G (inner).
func ComposeMap[FGA, FGB, GA, GB, A, B any](outer MapFunc[FGA, FGB, GA, GB], inner MapFunc[GA, GB, A, B]) MapFunc[FGA, FGB, A, B] {
	return func(fga FGA, f func(A) B) FGB {
		return outer(fga, func(ga GA) GB {
			return inner(ga, f)
		})
	}
}

// HyloC is [Hylo] over a composed shape F∘G. It is not a distinct
// algorithm, only a re-parameterization through [ComposeMap].
func HyloC[A, B, FGA, FGB, GA, GB any](outer MapFunc[FGA, FGB, GA, GB], inner MapFunc[GA, GB, A, B], alg Algebra[FGB, B], coalg Coalgebra[A, FGA]) func(A) B {
	return Hylo(ComposeMap(outer, inner), alg, coalg)
}
