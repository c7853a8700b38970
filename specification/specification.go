package specification

import "context"

// Specification is a predicate over T that can be combined with other
// specifications. Use New to create one from a plain predicate.
type Specification[T any] interface {

	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(ctx context.Context, t T) bool

	// And create a new specification that is the AND operation of the current
	// specification and another specification.
	And(another Specification[T]) Specification[T]

	// Or create a new specification that is the OR operation of the current
	// specification and another specification.
	Or(another Specification[T]) Specification[T]

	// Not create a new specification that is the NOT operation of the current specification.
	Not() Specification[T]
}

// New returns a Specification satisfied whenever predicate returns true.
func New[T any](predicate func(ctx context.Context, t T) bool) Specification[T] {
	return &base[T]{Predicate: predicate}
}

var _ Specification[any] = (*base[any])(nil)

type base[T any] struct {
	Predicate func(ctx context.Context, t T) bool
}

func (spec *base[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	return spec.Predicate(ctx, t)
}

func (spec *base[T]) And(another Specification[T]) Specification[T] {
	return And[T](spec, another)
}

func (spec *base[T]) Or(another Specification[T]) Specification[T] {
	return Or[T](spec, another)
}

func (spec *base[T]) Not() Specification[T] {
	return Not[T](spec)
}
