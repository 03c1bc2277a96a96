/*
Package ports defines the driven ports (interfaces) for the Cinta engine.

These interfaces decouple the core logic from external implementations,
allowing the engine to work with various definition sources, verdict caches
and run journals.

# Key Interfaces

  - DefinitionLoader: Responsible for loading machine Definitions (e.g., from YAML or Memory).
  - CaseLoader: Responsible for loading batch simulation cases.
  - VerdictCache: Stores terminal results of deterministic runs for reuse.
  - RunJournal: Appends completed runs to a durable history.
*/
package ports
