package specification

import "context"

// Conjunction is satisfied when every one of specs is satisfied.
// An empty conjunction is always satisfied.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	return New(func(ctx context.Context, t T) bool {
		for _, spec := range specs {
			if !spec.IsSatisfiedBy(ctx, t) {
				return false
			}
		}
		return true
	})
}

// Disjunction is satisfied when at least one of specs is satisfied.
// An empty disjunction is never satisfied.
func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	return New(func(ctx context.Context, t T) bool {
		for _, spec := range specs {
			if spec.IsSatisfiedBy(ctx, t) {
				return true
			}
		}
		return false
	})
}
