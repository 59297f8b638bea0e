package chain

import (
	"github.com/ib-77/fluent/pkg/fluent"
)

// Compose folds the given steps into a single step, seeded with the
// identity and accumulated left to right: the first step runs first.
// Compose() with no steps is the identity.
func Compose[T any](steps ...fluent.Step[T]) fluent.Step[T] {
	composed := fluent.Identity[T]()
	for _, step := range steps {
		prev, next := composed, step
		composed = func(t T) T {
			return next(prev(t))
		}
	}
	return composed
}

// ComposeTry is Compose for steps that can fail. The first step error
// skips every later step and is returned unchanged.
func ComposeTry[T any](steps ...fluent.TryStep[T]) fluent.TryStep[T] {
	composed := fluent.IdentityTry[T]()
	for _, step := range steps {
		prev, next := composed, step
		composed = func(t T) (T, error) {
			out, err := prev(t)
			if err != nil {
				return out, err
			}
			return next(out)
		}
	}
	return composed
}
