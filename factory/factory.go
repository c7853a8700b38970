package factory

import "context"

// Factory creates a T from the discriminating parameter P.
// It is the factory method of the Factory Method pattern: callers depend on
// Factory, concrete factories decide which T gets instantiated.
type Factory[T any, P any] interface {
	Create(ctx context.Context, param P) (T, error)
}

// The Func type is an adapter to allow the use of ordinary functions as Factory.
// If f is a function with the appropriate signature, Func(f) is a Factory that calls f.
type Func[T any, P any] func(ctx context.Context, param P) (T, error)

// Create calls f(ctx, param).
func (f Func[T, P]) Create(ctx context.Context, param P) (T, error) {
	return f(ctx, param)
}

// Must returns obj, it panics if err is not nil.
func Must[T any](obj T, err error) T {
	if err != nil {
		panic(err)
	}
	return obj
}
