package specification

import "context"

// Or returns a specification satisfied when left or right is satisfied.
func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	return New(func(ctx context.Context, t T) bool {
		return left.IsSatisfiedBy(ctx, t) || right.IsSatisfiedBy(ctx, t)
	})
}
