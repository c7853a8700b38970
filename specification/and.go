package specification

import "context"

// And returns a specification satisfied when both left and right are satisfied.
func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	return New(func(ctx context.Context, t T) bool {
		return left.IsSatisfiedBy(ctx, t) && right.IsSatisfiedBy(ctx, t)
	})
}
