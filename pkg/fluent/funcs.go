package fluent

// Predicate decides whether an element is kept during filtering.
type Predicate[T any] func(T) bool

// Mapper converts an element of one type to an element of another.
type Mapper[In, Out any] func(In) Out

// TryMapper is a Mapper that can fail.
type TryMapper[In, Out any] func(In) (Out, error)

// Step transforms a value into a new value of the same type.
type Step[T any] func(T) T

// TryStep is a Step that can fail.
type TryStep[T any] func(T) (T, error)

// Identity returns the step that leaves its input unchanged.
func Identity[T any]() Step[T] {
	return func(t T) T { return t }
}

// IdentityTry returns the always-succeeding identity step.
func IdentityTry[T any]() TryStep[T] {
	return func(t T) (T, error) { return t, nil }
}
