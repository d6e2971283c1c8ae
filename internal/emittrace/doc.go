// Package emittrace provides a passive, append-only data structure that
// accumulates one record per instruction emitted by the assembler pipeline,
// for the optional "debug mode" hex dump described in spec.md §6. It does
// not format or print anything itself — Dump renders the accumulated
// records on demand.
package emittrace
