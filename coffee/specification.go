package coffee

import (
	"context"

	"github.com/go-leo/factory-method/specification"
)

var (
	// Balanced is satisfied when milk and coffee add up to 100%.
	Balanced = specification.New(func(_ context.Context, c Coffee) bool {
		return c.MilkPercentage()+c.CoffeePercentage() == 100
	})

	// Black is satisfied by coffee without milk.
	Black = specification.New(func(_ context.Context, c Coffee) bool {
		return c.MilkPercentage() == 0
	})

	// WithMilk is satisfied by any coffee that is not Black.
	WithMilk = Black.Not()
)
