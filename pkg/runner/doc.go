/*
Package runner executes batches of tape inputs against a compiled machine.

It acts as the bridge between the core engine and the outside world: cases
come in from a loader or the command line, runs are fanned out across a
bounded worker pool, and the outcomes come back in input order together
with an aggregate summary. Optional ports plug in verdict caching and run
journaling without the core engine knowing about either.

# Key Components

  - Runner: the batch orchestrator with a bounded worker pool.
  - Outcome: one case paired with its terminal result.
  - Summary: aggregate counts over a finished batch.

# Usage

	eng, _ := cinta.Load("machine.yaml")
	r := runner.New(eng, runner.WithWorkers(4))

	outcomes, err := r.Run(ctx, cases)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(runner.Summarize(outcomes))
*/
package runner
