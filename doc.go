// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package morph provides recursion schemes in Go: generic traversal
// combinators that separate the shape of a recursive computation from the
// one-step logic that drives it.
//
// The core combinator [Hylo] takes a one-step unfolding (a [Coalgebra],
// expanding a value into one level of structure) and a one-step folding
// (an [Algebra], reducing one level of results), and fuses them into a
// single end-to-end traversal. The intermediate recursive structure is
// never materialized. The formulation follows Meijer, Fokkinga &
// Paterson, "Functional Programming with Bananas, Lenses, Envelopes and
// Barbed Wire" (1991).
//
// # Design Philosophy
//
// morph provides:
//   - One self-referential engine; every other scheme is a
//     re-parameterization, never a second algorithm
//   - Capability witnesses as named function types, passed explicitly —
//     no registries, no reflection, no interface hierarchies
//   - Pure, stateless combinators: each returned traversal owns no state
//     and independent invocations never interact
//
// # Higher-Kinded Encoding
//
// Go has no higher-kinded type parameters, so a shape F<_> never appears
// on its own. Each occurrence of F at an element type is an ordinary
// concrete type parameter (FA for F<A>, FB for F<B>), and the capability
// witness is what ties them together as the same shape:
//
//   - [MapFunc]: Functor capability — element-wise mapping FA → FB
//   - [TraverseFunc]: Traversable capability — element-wise effect
//     sequencing with a deterministic, documented element order
//   - [BindFunc]: effect-chaining capability of M at one carrier
//
// Witness laws (Functor identity and composition, order consistency of
// Traverse) are caller contracts; the engine assumes them.
//
// # Core Engine
//
//   - [Algebra]: reduce one level of results to a result
//   - [Coalgebra]: expand a value into one level of smaller values
//   - [Hylo]: fused unfold-then-fold, a → b
//   - [ComposeMap]: Functor witness for a composed shape F∘G
//   - [HyloC]: Hylo over a composed shape (type-level convenience)
//
// # Pure Schemes
//
// [Embed] and [Project] witness the conversion between a recursive
// representation R and one level of its structure F<R>; they are supplied
// by the caller and must round-trip one level faithfully.
//
//   - [Cata]: generic fold of R into a summary — Hylo with Project
//   - [Ana]: generic unfold of a seed into R — Hylo with Embed
//
// # Effectful Schemes
//
// [AlgebraM] and [CoalgebraM] return results wrapped in an effect type M.
// [HyloM] sequences children's effects in the Traverse witness's element
// order, then chains the algebra's own effect; failure in M
// short-circuits remaining sibling and parent work with M's own
// semantics. [EffectOps] bundles the witnesses one instantiation needs.
//
//   - [HyloM]: effectful hylomorphism, a → M<B>
//   - [CataM], [AnaM]: effectful fold/unfold via trivially lifted
//     witnesses (wrap-and-return through unit)
//   - [EitherOps]: dictionary for M = kont.Either[E, _] (failure channel;
//     Left short-circuits)
//   - [ContOps]: dictionary for M = kont.Eff[_] (algebras may Perform
//     kont effects, handled by the usual kont runners)
//
// # Generalized Schemes
//
// Generalized schemes thread auxiliary context through the recursion
// without changing its shape: upward via [Gather] (e.g. retaining each
// child's substructure alongside its result) or downward via [Scatter]
// (e.g. distributing pre-expanded structure).
//
//   - [GHylo]: generalized hylomorphism with independent upward/downward
//     context types
//   - [GCata], [GAna]: one-sided specializations
//   - [CataGather], [AnaScatter]: trivial witnesses under which the
//     generalized schemes degenerate to the plain ones
//   - [Para]: paramorphism — fold with access to original subtrees,
//     Hylo with the child/result pairing folded into the Functor witness
//
// [Scatter] returns kont.Either as an explicit tagged union: Left is a
// seed that still needs expansion through the coalgebra, Right is an
// already-expanded level that must be accepted as-is.
//
// # Iterative Evaluation
//
// [Hylo] recurses on the call stack; depth equals the expansion depth.
// [StackHylo] evaluates the same traversal with an explicit heap work
// stack, using [Split]/[Rebuild] witnesses in place of the Functor
// witness. Use it when inputs may be deeper than the stack can carry.
//
// # Termination and Errors
//
// Termination is solely the coalgebra's responsibility: a coalgebra that
// never reaches a base shape does not terminate, and the engine does not
// guard against it. Pure schemes have no error channel — a panic from a
// caller-supplied function propagates untouched. Effectful schemes route
// failure through M; the engine never catches, retries, or logs.
//
// # Example
//
// Factorial as a hylomorphism over a caller-defined optional-pair shape
// Step (an element and the next seed, or the empty base shape) with
// Functor witness MapStep:
//
//	coalg := func(n int) Step[int, int] {
//	    if n == 0 {
//	        return Done[int, int]()
//	    }
//	    return More(n, n-1)
//	}
//	alg := func(s Step[int, int]) int {
//	    if n, acc, ok := s.Get(); ok {
//	        return n * acc
//	    }
//	    return 1
//	}
//	fact := morph.Hylo[int, int, Step[int, int], Step[int, int]](
//	    MapStep[int, int, int], alg, coalg)
//	// fact(5) == 120
package morph
