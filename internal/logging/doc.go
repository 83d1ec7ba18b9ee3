// Package logging builds the slog loggers used by the CLI.
//
// Two output formats are supported: a human-oriented console format with a
// compact header and indented attributes, and machine-oriented JSON with
// normalized key names. The CLI is a one-shot process, so there is no file
// output, rotation, or retention here; everything goes to stderr so rendered
// tables on stdout stay clean.
package logging
