/*
Package cinta is a deterministic single-tape Turing machine engine designed
for simulating, checking and visualizing machine definitions.

It separates the declarative machine (states, alphabets, transition rules)
from the execution state (tape, head, step counter), compiling the former
once into an immutable table that any number of concurrent runs can share.

# Concept

Cinta treats a machine file as a complete simulation suite: the transition
table, the alphabets and the input words to drive through it. The engine
validates the definition up front, then runs each input to one of three
terminal verdicts: accepted, rejected or step limit exceeded. This Hexagonal
Architecture allows Cinta to be embedded in any interface: CLI, HTTP server,
or MCP tooling.

# Key Features

  - Deterministic Execution: Given the same machine and input, the step
    sequence and verdict are always reproducible.
  - Strict Validation: Duplicate transition keys, undeclared states and
    unknown symbols are rejected before anything runs.
  - Sparse Tape: Memory grows with the written region, never with head
    travel, and the head may roam both directions without bounds.
  - Batch Driver: A worker pool runs whole case suites concurrently against
    one shared table.

# Usage

Load a machine file and run inputs against it:

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/cinta"
	)

	func main() {
		eng, err := cinta.Load("machine.yaml")
		if err != nil {
			log.Fatal(err)
		}

		result, err := eng.Run(context.Background(), "abbaab")
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("%s after %d steps\n", result.Verdict, result.Steps)
	}
*/
package cinta
