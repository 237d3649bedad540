// Package main hosts the bookshelf CLI entrypoint and command graph.
//
// Running the bare binary starts the interactive menu session; subcommands
// expose the same catalog operations (add, remove, search, list, stats) for
// non-interactive use plus configuration scaffolding. The command tree
// centralizes configuration resolution and store construction so handlers can
// focus on user experience instead of wiring.
//
// Keep this package lean: catalog semantics live in internal/library and
// internal/session; commands here only translate flags and arguments.
package main
