// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package morph

import "code.hybscloud.com/kont"

// Monadic engine: hylomorphism variants whose algebra and coalgebra return
// results wrapped in an effect type M. The effect is abstracted the same way
// shapes are — as explicit capability witnesses at the carrier types the
// recursion uses. Constructors for the kont effect types ([EitherOps],
// [ContOps]) build the full dictionary from a Traverse witness alone.

// AlgebraM reduces one level of structure into an effectful result M<B>.
type AlgebraM[FB, MB any] func(FB) MB

// CoalgebraM expands one value into an effectful one-level structure M<F<A>>.
type CoalgebraM[A, MFA any] func(A) MFA

// TraverseFunc is the Traversable capability of a one-level shape F:
// it runs an effectful computation for every element of FA and sequences
// the per-element effects into one effect holding the collected shape.
//
// The element order is part of the witness contract and must be
// deterministic; all witnesses in this repository sequence left to right.
// Short-circuiting follows the effect type: once an element's effect
// fails, later elements are not visited.
type TraverseFunc[FA, MFB, A, MB any] func(FA, func(A) MB) MFB

// BindFunc is the chaining capability of the effect type M at one carrier
// instantiation: sequence a dependent effectful step after MA.
type BindFunc[MA, MB, A any] func(MA, func(A) MB) MB

// EffectOps bundles the capabilities [HyloM] needs: the Traverse witness of
// the shape, and the effect's Bind at the two carriers the recursion
// threads through — the expanded structure M<F<A>> and the sequenced level
// M<F<B>>.
type EffectOps[A, B, FA, FB, MB, MFA, MFB any] struct {
	Traverse   TraverseFunc[FA, MFB, A, MB]
	BindStruct BindFunc[MFA, MB, FA]
	BindLevel  BindFunc[MFB, MB, FB]
}

// HyloM is the effectful hylomorphism. For each seed it expands via coalg
// to M<F<A>>, traverses the produced shape with the recursive reference —
// sequencing the children's effects in the witness's element order — and
// chains the sequenced level M<F<B>> into alg. No intermediate recursive
// structure is materialized.
//
// Failure semantics are entirely those of M: a failing step short-circuits
// the remaining sibling and parent work per the Bind and Traverse
// witnesses, and the failure value becomes the final result.
func HyloM[A, B, FA, FB, MB, MFA, MFB any](ops EffectOps[A, B, FA, FB, MB, MFA, MFB], alg AlgebraM[FB, MB], coalg CoalgebraM[A, MFA]) func(A) MB {
	var h func(A) MB
	h = func(a A) MB {
		return ops.BindStruct(coalg(a), func(fa FA) MB {
			return ops.BindLevel(ops.Traverse(fa, h), alg)
		})
	}
	return h
}

// CataM is the effectful fold: [HyloM] with the unfold side fixed to the
// Project witness, lifted trivially into M via unit (wrap-and-return).
func CataM[R, B, FR, FB, MB, MFR, MFB any](ops EffectOps[R, B, FR, FB, MB, MFR, MFB], unit func(FR) MFR, alg AlgebraM[FB, MB], project Project[R, FR]) func(R) MB {
	coalg := func(r R) MFR {
		return unit(project.Coalg(r))
	}
	return HyloM(ops, alg, coalg)
}

// AnaM is the effectful unfold: [HyloM] with the fold side fixed to the
// Embed witness, lifted trivially into M via unit (wrap-and-return).
func AnaM[A, R, FA, FR, MR, MFA, MFR any](ops EffectOps[A, R, FA, FR, MR, MFA, MFR], unit func(R) MR, embed Embed[FR, R], coalg CoalgebraM[A, MFA]) func(A) MR {
	alg := func(fr FR) MR {
		return unit(embed.Alg(fr))
	}
	return HyloM(ops, alg, coalg)
}

// EitherOps builds the [EffectOps] dictionary for M = kont.Either[E, _]
// from a Traverse witness alone. Bind is [kont.FlatMapEither] at both
// carriers, so a Left from any algebra, coalgebra, or child short-circuits
// the whole traversal with that Left.
func EitherOps[E, A, B, FA, FB any](trav TraverseFunc[FA, kont.Either[E, FB], A, kont.Either[E, B]]) EffectOps[A, B, FA, FB, kont.Either[E, B], kont.Either[E, FA], kont.Either[E, FB]] {
	return EffectOps[A, B, FA, FB, kont.Either[E, B], kont.Either[E, FA], kont.Either[E, FB]]{
		Traverse:   trav,
		BindStruct: kont.FlatMapEither[E, FA, B],
		BindLevel:  kont.FlatMapEither[E, FB, B],
	}
}

// ContOps builds the [EffectOps] dictionary for M = kont.Eff[_], the
// effectful continuation type. Bind is [kont.Bind] at both carriers;
// algebras and coalgebras may Perform kont effects (State, Writer, Error),
// and the resulting computation is run with the usual kont handlers.
func ContOps[A, B, FA, FB any](trav TraverseFunc[FA, kont.Eff[FB], A, kont.Eff[B]]) EffectOps[A, B, FA, FB, kont.Eff[B], kont.Eff[FA], kont.Eff[FB]] {
	return EffectOps[A, B, FA, FB, kont.Eff[B], kont.Eff[FA], kont.Eff[FB]]{
		Traverse:   trav,
		BindStruct: kont.Bind[kont.Resumed, FA, B],
		BindLevel:  kont.Bind[kont.Resumed, FB, B],
	}
}
