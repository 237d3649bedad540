// Package logging constructs the slog loggers used across bookshelf.
//
// It offers a compact console handler for human-readable output and a JSON
// handler for machine consumption, selected by the configured format. The
// interactive session routes its logger to a file under the state directory
// so structured output never interleaves with menu prompts.
//
// Obtain loggers through New or NewNop and derive per-component loggers with
// WithComponent so every record carries a component attribute.
package logging
