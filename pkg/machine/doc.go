/*
Package machine contains the core domain model for the Cinta engine.

It defines the entities of a deterministic single-tape Turing machine, such as
Symbols, States, Rules and the compiled transition Table. This package is kept
pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - Symbol / State: Opaque identifiers for tape letters and control states.
  - Rule: A single deterministic transition (state, symbol) -> (state, symbol, move).
  - Definition: The declarative description of a machine before compilation.
  - Table: The validated, immutable transition function shared by runs.
  - RunResult: The outcome of executing one input (verdict, steps, final tape).
*/
package machine
