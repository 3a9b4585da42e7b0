// Package main hosts the kodi-tools CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into library
// sequencing runs, extras generation, cache maintenance, run history queries,
// and configuration scaffolding. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
