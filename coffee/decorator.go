package coffee

import "log/slog"

// Decorator wraps a Maker, adding behaviour around Brew.
type Decorator interface {
	// Decorate wraps the underlying Maker, adding some functionality.
	Decorate(m Maker) Maker
}

// The DecoratorFunc type is an adapter to allow the use of ordinary functions as Decorator.
type DecoratorFunc func(m Maker) Maker

// Decorate calls f(m).
func (f DecoratorFunc) Decorate(m Maker) Maker {
	return f(m)
}

// Chain decorates m with all decorators. The first decorator is the outermost one.
func Chain(m Maker, decorators ...Decorator) Maker {
	for i := len(decorators) - 1; i >= 0; i-- {
		m = decorators[i].Decorate(m)
	}
	return m
}

// Logging logs every brewed coffee at debug level.
func Logging(logger *slog.Logger) Decorator {
	return DecoratorFunc(func(m Maker) Maker {
		return MakerFunc(func() Coffee {
			c := m.Brew()
			logger.Debug("coffee brewed",
				slog.String("coffee", c.Type().String()),
				slog.Int("milk_percentage", c.MilkPercentage()),
				slog.Int("coffee_percentage", c.CoffeePercentage()),
			)
			return c
		})
	})
}
