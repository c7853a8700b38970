package specification

import "context"

// Not returns the inverse of spec.
func Not[T any](spec Specification[T]) Specification[T] {
	return New(func(ctx context.Context, t T) bool {
		return !spec.IsSatisfiedBy(ctx, t)
	})
}
