package main

import (
	"fmt"
	"os"

	"github.com/tdhoang/marketgraph/cmd/cli/auth"
	"github.com/tdhoang/marketgraph/cmd/cli/cart"
	"github.com/tdhoang/marketgraph/cmd/cli/products"
	"github.com/tdhoang/marketgraph/cmd/cli/root"
)

func main() {
	r := root.GetRoot()
	auth.Init(r)
	products.Init(r)
	cart.Init(r)

	if err := r.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
