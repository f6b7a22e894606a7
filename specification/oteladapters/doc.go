// Package oteladapters provides OpenTelemetry implementations of the specification
// observability interfaces, for users who want plug-and-play instrumentation of
// specification evaluation without implementing the interfaces themselves.
package oteladapters
