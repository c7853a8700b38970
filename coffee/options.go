package coffee

import (
	"io"
	"log/slog"
)

type option struct {
	Decorators []Decorator
	Logger     *slog.Logger
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return o
}

type Option func(o *option)

// Decorators wraps every Maker a Selector creates with decorators.
func Decorators(decorators ...Decorator) Option {
	return func(o *option) {
		o.Decorators = append(o.Decorators, decorators...)
	}
}

// Logger sets the logger a Selector reports rejected types to.
func Logger(logger *slog.Logger) Option {
	return func(o *option) {
		o.Logger = logger
	}
}
