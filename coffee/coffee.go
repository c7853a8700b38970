package coffee

import "fmt"

// Coffee is the product brewed by a Maker.
type Coffee interface {
	// Type returns the type this coffee was brewed as.
	Type() Type

	// MilkPercentage returns the share of milk, in [0, 100].
	MilkPercentage() int

	// CoffeePercentage returns the share of coffee, in [0, 100].
	CoffeePercentage() int

	// Description renders the coffee as
	// "<Name> contains <milk>% milk and <coffee>% coffee."
	Description() string
}

func describe(c Coffee) string {
	return fmt.Sprintf("%s contains %d%% milk and %d%% coffee.", c.Type(), c.MilkPercentage(), c.CoffeePercentage())
}

var _ Coffee = (*Espresso)(nil)

// Espresso is pure coffee.
type Espresso struct {
	milkPercentage   int
	coffeePercentage int
}

func NewEspresso() *Espresso {
	return &Espresso{milkPercentage: 0, coffeePercentage: 100}
}

func (*Espresso) Type() Type {
	return EspressoType
}

func (e *Espresso) MilkPercentage() int {
	return e.milkPercentage
}

func (e *Espresso) CoffeePercentage() int {
	return e.coffeePercentage
}

func (e *Espresso) Description() string {
	return describe(e)
}

var _ Coffee = (*Cappuccino)(nil)

// Cappuccino is half milk, half coffee.
type Cappuccino struct {
	milkPercentage   int
	coffeePercentage int
}

func NewCappuccino() *Cappuccino {
	return &Cappuccino{milkPercentage: 50, coffeePercentage: 50}
}

func (*Cappuccino) Type() Type {
	return CappuccinoType
}

func (c *Cappuccino) MilkPercentage() int {
	return c.milkPercentage
}

func (c *Cappuccino) CoffeePercentage() int {
	return c.coffeePercentage
}

func (c *Cappuccino) Description() string {
	return describe(c)
}
