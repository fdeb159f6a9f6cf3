// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package morph

import "code.hybscloud.com/kont"

// Generalized engine: hylomorphism variants that thread auxiliary context
// through the recursion — upward while folding (Gather) or downward while
// unfolding (Scatter) — without changing the core recursive shape.
//
// A generalized algebra is an ordinary [Algebra] over the context-filled
// shape F<SB>, and a generalized coalgebra an ordinary [Coalgebra] into
// F<SA>; only the context types distinguish them from the plain schemes.

// Gather combines a freshly computed result with the one-level structure
// that produced it, yielding the context threaded upward. The trivial
// gather [CataGather] discards the structure.
type Gather[B, FS, S any] func(B, FS) S

// Scatter expands downward context into either a seed that still needs
// expansion through the coalgebra (Left) or an already-expanded one-level
// structure that must be accepted as-is (Right). Generalized-scheme
// correctness depends on the tag being accurate. The trivial scatter
// [AnaScatter] always requests expansion.
type Scatter[S, A, FSA any] func(S) kont.Either[A, FSA]

// GHylo is the generalized hylomorphism. The outer level expands a via
// gcoalg and reduces via galg as usual; each child runs an inner [Hylo]
// whose algebra pairs the child result with its own structure through
// gather, and whose coalgebra dispatches on the scatter tag — accepting
// pre-expanded structure directly, or re-invoking gcoalg on a raw seed.
//
// The upward context SB and downward context SA are independent; a scheme
// using only one side fixes the other to the trivial witness.
func GHylo[A, B, SA, SB, FSA, FSB any](fmap MapFunc[FSA, FSB, SA, SB], galg Algebra[FSB, B], gcoalg Coalgebra[A, FSA], gather Gather[B, FSB, SB], scatter Scatter[SA, A, FSA]) func(A) B {
	alg := func(fsb FSB) SB {
		return gather(galg(fsb), fsb)
	}
	coalg := func(sa SA) FSA {
		next := scatter(sa)
		if fsa, ok := next.GetRight(); ok {
			return fsa
		}
		seed, _ := next.GetLeft()
		return gcoalg(seed)
	}
	h := Hylo(fmap, alg, coalg)
	return func(a A) B {
		return galg(fmap(gcoalg(a), h))
	}
}

// CataGather is the trivial upward context: keep only the result. With it,
// [GCata] computes exactly what [Cata] computes.
func CataGather[B, FS any]() Gather[B, FS, B] {
	return func(b B, _ FS) B {
		return b
	}
}

// AnaScatter is the trivial downward context: every value is a seed that
// needs expansion. With it, [GAna] computes exactly what [Ana] computes.
func AnaScatter[S, FSA any]() Scatter[S, S, FSA] {
	return func(s S) kont.Either[S, FSA] {
		return kont.Left[S, FSA](s)
	}
}

// GCata is the generalized fold: only the fold side carries context.
// It is [GHylo] with the unfold fixed to the Project witness and the
// trivial scatter.
func GCata[R, B, SB, FR, FSB any](fmap MapFunc[FR, FSB, R, SB], galg Algebra[FSB, B], gather Gather[B, FSB, SB], project Project[R, FR]) func(R) B {
	return GHylo[R, B, R, SB, FR, FSB](fmap, galg, project.Coalg, gather, AnaScatter[R, FR]())
}

// GAna is the generalized unfold: only the unfold side carries context.
// It is [GHylo] with the fold fixed to the Embed witness and the trivial
// gather.
func GAna[A, R, SA, FSA, FR any](fmap MapFunc[FSA, FR, SA, R], embed Embed[FR, R], gcoalg Coalgebra[A, FSA], scatter Scatter[SA, A, FSA]) func(A) R {
	return GHylo[A, R, SA, R, FSA, FR](fmap, embed.Alg, gcoalg, CataGather[R, FR](), scatter)
}

// Para is the paramorphism: a fold whose algebra sees, for every child,
// both the child's result and the original untouched subtree. It is
// [Hylo] with the pairing folded into the Functor witness: each projected
// child x is mapped to kont.Pair{Fst: x, Snd: recurse(x)}, so Fst is the
// very subtree the Project witness produced — no reconstruction.
//
// fmap maps R-elements of the projected level to their pairs.
func Para[R, B, FR, FP any](fmap MapFunc[FR, FP, R, kont.Pair[R, B]], alg Algebra[FP, B], project Project[R, FR]) func(R) B {
	paired := func(fr FR, f func(R) B) FP {
		return fmap(fr, func(x R) kont.Pair[R, B] {
			return kont.Pair[R, B]{Fst: x, Snd: f(x)}
		})
	}
	return Hylo[R, B, FR, FP](paired, alg, project.Coalg)
}
