package seq

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/fluent/pkg/fluent"
)

// Seq wraps an ordered sequence of elements. The wrapped sequence is
// never mutated in place; every operation produces a new instance.
type Seq[T any] struct {
	stamp fluent.Stamp
	items []T
}

// From wraps the given ordered sequence. A nil sequence fails with
// fluent.ErrInvalidArgument. The input is copied, so the caller may
// keep mutating its slice without affecting the wrapper.
func From[T any](items []T) (Seq[T], error) {
	if items == nil {
		return Seq[T]{}, fmt.Errorf("%w: nil sequence", fluent.ErrInvalidArgument)
	}
	return wrap(append(make([]T, 0, len(items)), items...)), nil
}

func wrap[T any](items []T) Seq[T] {
	return Seq[T]{stamp: fluent.NewStamp(), items: items}
}

// Filter returns a new wrapper containing, in original order, exactly
// the elements for which keep returns true.
func (s Seq[T]) Filter(keep fluent.Predicate[T]) Seq[T] {
	kept := make([]T, 0, len(s.items))
	for _, it := range s.items {
		if keep(it) {
			kept = append(kept, it)
		}
	}
	return wrap(kept)
}

// Each calls visit for every element in order and returns the wrapper
// unchanged, so side effects can be placed mid-chain.
func (s Seq[T]) Each(visit func(T)) Seq[T] {
	for _, it := range s.items {
		visit(it)
	}
	return s
}

// Sequence is the terminal operation; it returns the wrapped sequence
// as a fresh concrete slice.
func (s Seq[T]) Sequence() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s Seq[T]) Len() int {
	return len(s.items)
}

func (s Seq[T]) IsEmpty() bool {
	return len(s.items) == 0
}

func (s Seq[T]) Id() uuid.UUID {
	return s.stamp.Id()
}

func (s Seq[T]) CreatedAt() time.Time {
	return s.stamp.CreatedAt()
}

// Transform maps every element through mapper, preserving order and
// length. Package-level because a method cannot introduce the Out
// type parameter.
func Transform[In, Out any](s Seq[In], mapper fluent.Mapper[In, Out]) Seq[Out] {
	mapped := make([]Out, 0, len(s.items))
	for _, it := range s.items {
		mapped = append(mapped, mapper(it))
	}
	return wrap(mapped)
}

// TryTransform is Transform for mappers that can fail. The first
// mapper error aborts the pass and is returned unchanged.
func TryTransform[In, Out any](s Seq[In], mapper fluent.TryMapper[In, Out]) (Seq[Out], error) {
	mapped := make([]Out, 0, len(s.items))
	for _, it := range s.items {
		out, err := mapper(it)
		if err != nil {
			return Seq[Out]{}, err
		}
		mapped = append(mapped, out)
	}
	return wrap(mapped), nil
}

// Reduce folds the sequence left to right, starting from seed.
func Reduce[T, Acc any](s Seq[T], seed Acc, fold func(Acc, T) Acc) Acc {
	acc := seed
	for _, it := range s.items {
		acc = fold(acc, it)
	}
	return acc
}
