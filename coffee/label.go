package coffee

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Label is the printable summary of a Coffee.
type Label struct {
	Name             Type `json:"name"`
	MilkPercentage   int  `json:"milk_percentage"`
	CoffeePercentage int  `json:"coffee_percentage"`
}

func LabelOf(c Coffee) Label {
	return Label{
		Name:             c.Type(),
		MilkPercentage:   c.MilkPercentage(),
		CoffeePercentage: c.CoffeePercentage(),
	}
}

// EncodeLabel writes the label of c to w as a single line of JSON.
func EncodeLabel(w io.Writer, c Coffee) error {
	return json.NewEncoder(w).Encode(LabelOf(c))
}
