package main

import (
	"os"

	"github.com/go-leo/factory-method/coffee"
	"github.com/go-leo/factory-method/factory"
)

func main() {
	maker := factory.Must(coffee.Order(coffee.CappuccinoType))
	if err := coffee.ServeTo(os.Stdout, maker); err != nil {
		panic(err)
	}
}
