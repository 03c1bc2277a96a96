/*
Package observability provides tools for monitoring simulation runs.

It includes lifecycle hooks for structured step-by-step logging and a
Prometheus metrics collector counting runs by verdict and observing the
steps each run consumed. Both attach to the engine through
machine.LifecycleHooks, so they can be combined freely with other hook
consumers.
*/
package observability
