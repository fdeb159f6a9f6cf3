// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package morph

// Embed and Project witnesses bridge a concrete recursive representation R
// and one level of its structure F<R>. They are supplied by the caller and
// passed explicitly — there is no implicit registry or inheritance.
//
// Correctness contract: projecting one level out of R and embedding it back
// must reproduce an equivalent one-level structure. Cata and Ana rely on
// this round-trip.

// Embed witnesses that one level of structure FR builds into the recursive
// representation R.
type Embed[FR, R any] struct {
	Alg Algebra[FR, R]
}

// Project witnesses that the recursive representation R tears down into one
// level of structure FR.
type Project[R, FR any] struct {
	Coalg Coalgebra[R, FR]
}

// Cata is the generic fold: repeatedly tear R down one level via the
// Project witness, recursively reduce the children, then apply alg.
// It is [Hylo] with the unfold side fixed to project.Coalg.
func Cata[R, B, FR, FB any](fmap MapFunc[FR, FB, R, B], alg Algebra[FB, B], project Project[R, FR]) func(R) B {
	return Hylo(fmap, alg, project.Coalg)
}

// Ana is the generic unfold: repeatedly expand a seed one level via coalg,
// recurse on the children, then rebuild R via the Embed witness.
// It is [Hylo] with the fold side fixed to embed.Alg.
func Ana[A, R, FA, FR any](fmap MapFunc[FA, FR, A, R], embed Embed[FR, R], coalg Coalgebra[A, FA]) func(A) R {
	return Hylo(fmap, embed.Alg, coalg)
}
