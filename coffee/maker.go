package coffee

import "io"

// Maker brews one kind of Coffee.
// Brew is the factory method: every call returns a newly made Coffee.
type Maker interface {
	Brew() Coffee
}

// The MakerFunc type is an adapter to allow the use of ordinary functions as Maker.
// If f is a function with the appropriate signature, MakerFunc(f) is a Maker that calls f.
type MakerFunc func() Coffee

// Brew calls f().
func (f MakerFunc) Brew() Coffee {
	return f()
}

// EspressoMaker brews Espresso.
type EspressoMaker struct{}

func (EspressoMaker) Brew() Coffee {
	return NewEspresso()
}

// CappuccinoMaker brews Cappuccino.
type CappuccinoMaker struct{}

func (CappuccinoMaker) Brew() Coffee {
	return NewCappuccino()
}

// Serve brews a coffee with m and returns its description.
func Serve(m Maker) string {
	return m.Brew().Description()
}

// ServeTo writes the description of a coffee brewed with m to w, followed by a newline.
func ServeTo(w io.Writer, m Maker) error {
	_, err := io.WriteString(w, Serve(m)+"\n")
	return err
}
