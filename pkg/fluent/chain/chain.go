package chain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/fluent/pkg/fluent"
)

// Chain holds a fixed starting value and an accumulated step function,
// initially the identity. Steps are composed lazily; nothing runs until
// Calculate.
type Chain[T any] struct {
	stamp fluent.Stamp
	value T
	run   fluent.TryStep[T]
}

// From creates a chain around the given starting value. A nil-equivalent
// value fails with fluent.ErrInvalidArgument.
func From[T any](value T) (Chain[T], error) {
	if fluent.IsNil(value) {
		return Chain[T]{}, fmt.Errorf("%w: nil starting value", fluent.ErrInvalidArgument)
	}
	return Chain[T]{
		stamp: fluent.NewStamp(),
		value: value,
		run:   fluent.IdentityTry[T](),
	}, nil
}

// With returns a new chain whose accumulated function applies the
// previous steps first, then step. No evaluation happens here.
func (c Chain[T]) With(step fluent.Step[T]) Chain[T] {
	return c.WithTry(func(t T) (T, error) {
		return step(t), nil
	})
}

// WithTry composes a step that can fail. At evaluation time a step
// error skips every later step and surfaces from Calculate unchanged.
func (c Chain[T]) WithTry(step fluent.TryStep[T]) Chain[T] {
	prev := c.run
	return Chain[T]{
		stamp: fluent.NewStamp(),
		value: c.value,
		run: func(t T) (T, error) {
			out, err := prev(t)
			if err != nil {
				return out, err
			}
			return step(out)
		},
	}
}

// Tee composes a deferred side effect on the value passing through,
// leaving the value unchanged.
func (c Chain[T]) Tee(observe func(T)) Chain[T] {
	return c.WithTry(func(t T) (T, error) {
		observe(t)
		return t, nil
	})
}

// Calculate is the terminal operation; it applies the accumulated
// function to the starting value. The chain is never mutated, so
// repeated and concurrent calls return the same result. A chain with
// zero steps returns the starting value.
func (c Chain[T]) Calculate() (T, error) {
	return c.run(c.value)
}

// Value returns the starting value the chain was built from.
func (c Chain[T]) Value() T {
	return c.value
}

func (c Chain[T]) Id() uuid.UUID {
	return c.stamp.Id()
}

func (c Chain[T]) CreatedAt() time.Time {
	return c.stamp.CreatedAt()
}
