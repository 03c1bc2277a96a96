package cinta_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/cinta"
	"github.com/aretw0/cinta/pkg/dsl"
)

// ExampleLoad_dsl assembles the machine with the fluent builder instead of a
// YAML file. The tape alphabet is derived from the rules, so the definition
// stays compact.
func ExampleLoad_dsl() {
	b := dsl.New("even-a")
	b.Symbols("a", "b")

	b.State("q0").Initial().
		On("a", "a", dsl.Right, "q1").
		Loop("b", "b", dsl.Right).
		On("_", "_", dsl.Right, "qf")

	b.State("q1").
		On("a", "a", dsl.Right, "q0").
		Loop("b", "b", dsl.Right)

	b.State("qf").Final()

	loader, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	engine, err := cinta.Load("", cinta.WithLoader(loader))
	if err != nil {
		log.Fatal(err)
	}

	result, err := engine.Run(context.Background(), "aa")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s (steps=%d)\n", result.Verdict, result.Steps)
	// Output:
	// accepted (steps=3)
}
