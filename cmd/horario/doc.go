// Package main hosts the horario CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into parser
// and planner calls: pasted course listings come in from a file or stdin,
// records and schedule combinations go out as rounded tables or JSON. It
// centralizes configuration resolution and structured logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
