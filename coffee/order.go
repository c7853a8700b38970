package coffee

import (
	"context"
	"log/slog"

	"github.com/go-leo/factory-method/factory"
)

var _ factory.Factory[Maker, Type] = (*Selector)(nil)

// Selector maps a Type to the Maker that brews it.
type Selector struct {
	options *option
}

func NewSelector(opts ...Option) *Selector {
	return &Selector{options: newOption(opts...)}
}

// Create returns a new Maker for t.
// It fails with InvalidTypeError if t is not a declared Type.
func (s *Selector) Create(ctx context.Context, t Type) (Maker, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var maker Maker
	switch t {
	case EspressoType:
		maker = EspressoMaker{}
	case CappuccinoType:
		maker = CappuccinoMaker{}
	default:
		s.options.Logger.Warn("coffee type rejected", slog.Int("type", int(t)))
		return nil, InvalidTypeError{Value: t.String()}
	}
	return Chain(maker, s.options.Decorators...), nil
}

var defaultSelector = NewSelector()

// Order returns the Maker for t using an undecorated Selector.
func Order(t Type) (Maker, error) {
	return defaultSelector.Create(context.Background(), t)
}
