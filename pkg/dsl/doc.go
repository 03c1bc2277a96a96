/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing machine definitions.

It allows developers to assemble transition tables using a type-safe, fluent
builder pattern instead of relying on external YAML files. This is
particularly useful for test fixtures, generated machines and embedding small
recognizers directly in Go code. The tape alphabet is derived automatically
from the input alphabet and the rules, so only the states and transitions
need to be spelled out.

Example usage:

	package main

	import (
		"github.com/aretw0/cinta"
		"github.com/aretw0/cinta/pkg/dsl"
	)

	func main() {
		b := dsl.New("even-a")
		b.Symbols("a", "b").Accepts("", "aa", "aba")

		b.State("q0").Initial().
			On("a", "a", dsl.Right, "q1").
			Loop("b", "b", dsl.Right).
			On("_", "_", dsl.Right, "qf")

		b.State("q1").
			On("a", "a", dsl.Right, "q0").
			Loop("b", "b", dsl.Right)

		b.State("qf").Final()

		loader, err := b.Build()
		// ... pass loader to cinta.Load("", cinta.WithLoader(loader))
	}
*/
package dsl
