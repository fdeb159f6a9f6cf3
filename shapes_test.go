// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package morph_test

import (
	"code.hybscloud.com/kont"
	"code.hybscloud.com/morph"
)

// Concrete one-level shapes and recursive representations shared by the
// test suite. The engine itself never defines shapes; these play the role
// of the caller-supplied structural capabilities.

// --- Step: optional-pair shape (base functor of sequences) ---

// Step is either the empty base shape or one element paired with the next
// seed/result. It is the one-level shape of linear unfolds such as
// factorial and of cons lists.
type Step[E, A any] struct {
	more bool
	head E
	next A
}

func Done[E, A any]() Step[E, A] {
	return Step[E, A]{}
}

func More[E, A any](head E, next A) Step[E, A] {
	return Step[E, A]{more: true, head: head, next: next}
}

// Get returns the element, the next value, and whether the step is non-empty.
func (s Step[E, A]) Get() (E, A, bool) {
	return s.head, s.next, s.more
}

// MapStep is the Functor witness for Step (at most one element to map).
func MapStep[E, A, B any](s Step[E, A], f func(A) B) Step[E, B] {
	if !s.more {
		return Done[E, B]()
	}
	return More(s.head, f(s.next))
}

// TraverseStepEither sequences the single element's Either effect.
func TraverseStepEither[Err, E, A, B any](s Step[E, A], f func(A) kont.Either[Err, B]) kont.Either[Err, Step[E, B]] {
	if !s.more {
		return kont.Right[Err](Done[E, B]())
	}
	return kont.MapEither(f(s.next), func(b B) Step[E, B] {
		return More(s.head, b)
	})
}

// TraverseStepEff sequences the single element's kont effect.
func TraverseStepEff[E, A, B any](s Step[E, A], f func(A) kont.Eff[B]) kont.Eff[Step[E, B]] {
	if !s.more {
		return kont.Pure(Done[E, B]())
	}
	return kont.Map(f(s.next), func(b B) Step[E, B] {
		return More(s.head, b)
	})
}

// SplitStep / RebuildStep are the StackHylo witnesses for Step.
func SplitStep[E, A any](s Step[E, A]) []A {
	if _, next, ok := s.Get(); ok {
		return []A{next}
	}
	return nil
}

func RebuildStep[E, A, B any](s Step[E, A], bs []B) Step[E, B] {
	if h, _, ok := s.Get(); ok {
		return More(h, bs[0])
	}
	return Done[E, B]()
}

// --- List: cons-list representation with Step as its one-level shape ---

// List is a cons list; the nil pointer is the empty list.
type List[E any] struct {
	head E
	tail *List[E]
}

func ListEmbed[E any]() morph.Embed[Step[E, *List[E]], *List[E]] {
	return morph.Embed[Step[E, *List[E]], *List[E]]{
		Alg: func(s Step[E, *List[E]]) *List[E] {
			if h, t, ok := s.Get(); ok {
				return &List[E]{head: h, tail: t}
			}
			return nil
		},
	}
}

func ListProject[E any]() morph.Project[*List[E], Step[E, *List[E]]] {
	return morph.Project[*List[E], Step[E, *List[E]]]{
		Coalg: func(l *List[E]) Step[E, *List[E]] {
			if l == nil {
				return Done[E, *List[E]]()
			}
			return More(l.head, l.tail)
		},
	}
}

// ListOf builds a List from elements, first element at the head.
func ListOf[E any](elems ...E) *List[E] {
	var l *List[E]
	for i := len(elems) - 1; i >= 0; i-- {
		l = &List[E]{head: elems[i], tail: l}
	}
	return l
}

// ListSlice flattens a List into a slice for assertions.
func ListSlice[E any](l *List[E]) []E {
	var out []E
	for ; l != nil; l = l.tail {
		out = append(out, l.head)
	}
	return out
}

// --- TreeF / Tree: binary-tree shape and representation ---

// TreeF is the one-level shape of a binary tree: a leaf value or two
// children. Element order is left before right.
type TreeF[V, A any] struct {
	branch bool
	value  V
	left   A
	right  A
}

func LeafF[V, A any](v V) TreeF[V, A] {
	return TreeF[V, A]{value: v}
}

func BranchF[V, A any](l, r A) TreeF[V, A] {
	return TreeF[V, A]{branch: true, left: l, right: r}
}

// MapTreeF is the Functor witness for TreeF; left child first.
func MapTreeF[V, A, B any](t TreeF[V, A], f func(A) B) TreeF[V, B] {
	if !t.branch {
		return LeafF[V, B](t.value)
	}
	return BranchF[V](f(t.left), f(t.right))
}

// TraverseTreeFEither sequences children's Either effects left to right;
// a Left from the left child skips the right child.
func TraverseTreeFEither[Err, V, A, B any](t TreeF[V, A], f func(A) kont.Either[Err, B]) kont.Either[Err, TreeF[V, B]] {
	if !t.branch {
		return kont.Right[Err](LeafF[V, B](t.value))
	}
	return kont.FlatMapEither(f(t.left), func(l B) kont.Either[Err, TreeF[V, B]] {
		return kont.MapEither(f(t.right), func(r B) TreeF[V, B] {
			return BranchF[V](l, r)
		})
	})
}

// TraverseTreeFEff sequences children's kont effects left to right.
func TraverseTreeFEff[V, A, B any](t TreeF[V, A], f func(A) kont.Eff[B]) kont.Eff[TreeF[V, B]] {
	if !t.branch {
		return kont.Pure(LeafF[V, B](t.value))
	}
	return kont.Bind(f(t.left), func(l B) kont.Eff[TreeF[V, B]] {
		return kont.Map(f(t.right), func(r B) TreeF[V, B] {
			return BranchF[V](l, r)
		})
	})
}

// SplitTreeF / RebuildTreeF are the StackHylo witnesses for TreeF.
func SplitTreeF[V, A any](t TreeF[V, A]) []A {
	if !t.branch {
		return nil
	}
	return []A{t.left, t.right}
}

func RebuildTreeF[V, A, B any](t TreeF[V, A], bs []B) TreeF[V, B] {
	if !t.branch {
		return LeafF[V, B](t.value)
	}
	return BranchF[V](bs[0], bs[1])
}

// Tree is a binary tree with TreeF as its one-level shape.
type Tree[V any] struct {
	leaf  bool
	value V
	left  *Tree[V]
	right *Tree[V]
}

func Leaf[V any](v V) *Tree[V] {
	return &Tree[V]{leaf: true, value: v}
}

func Branch[V any](l, r *Tree[V]) *Tree[V] {
	return &Tree[V]{left: l, right: r}
}

func TreeEmbed[V any]() morph.Embed[TreeF[V, *Tree[V]], *Tree[V]] {
	return morph.Embed[TreeF[V, *Tree[V]], *Tree[V]]{
		Alg: func(t TreeF[V, *Tree[V]]) *Tree[V] {
			if !t.branch {
				return Leaf(t.value)
			}
			return Branch(t.left, t.right)
		},
	}
}

func TreeProject[V any]() morph.Project[*Tree[V], TreeF[V, *Tree[V]]] {
	return morph.Project[*Tree[V], TreeF[V, *Tree[V]]]{
		Coalg: func(t *Tree[V]) TreeF[V, *Tree[V]] {
			if t.leaf {
				return LeafF[V, *Tree[V]](t.value)
			}
			return BranchF[V](t.left, t.right)
		},
	}
}

// MapSlice is the Functor witness for slices, used for composed shapes.
func MapSlice[A, B any](xs []A, f func(A) B) []B {
	ys := make([]B, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}

// --- Shared one-step logic used across tests ---

// factCoalg is the factorial unfold: 0 expands to the base shape,
// n to More(n, n-1).
func factCoalg(n int) Step[int, int] {
	if n == 0 {
		return Done[int, int]()
	}
	return More(n, n-1)
}

// factAlg multiplies an element into the accumulated product.
func factAlg(s Step[int, int]) int {
	if n, acc, ok := s.Get(); ok {
		return n * acc
	}
	return 1
}

// sumTreeAlg sums a one-level tree of ints.
func sumTreeAlg(t TreeF[int, int]) int {
	if !t.branch {
		return t.value
	}
	return t.left + t.right
}

// factorial is the direct reference implementation.
func factorial(n int) int {
	acc := 1
	for i := 2; i <= n; i++ {
		acc *= i
	}
	return acc
}
