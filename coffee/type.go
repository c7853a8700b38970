package coffee

import (
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Type selects which coffee gets brewed.
type Type int

const (
	EspressoType Type = iota
	CappuccinoType
)

var typeNames = map[Type]string{
	EspressoType:   "Espresso",
	CappuccinoType: "Cappuccino",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// Valid reports whether t is one of the declared coffee types.
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// Types returns every declared coffee type in ascending order.
func Types() []Type {
	types := maps.Keys(typeNames)
	slices.Sort(types)
	return types
}

// ParseType converts a type name such as "espresso" into a Type.
// Matching ignores case and surrounding spaces.
func ParseType(s string) (Type, error) {
	name := strings.TrimSpace(s)
	for t, n := range typeNames {
		if strings.EqualFold(n, name) {
			return t, nil
		}
	}
	return 0, InvalidTypeError{Value: s}
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, InvalidTypeError{Value: t.String()}
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
