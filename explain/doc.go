// Package explain walks through an MD5 computation one stage at a time.
// Trace frames the message, records the state before and after every
// block and returns a Report that can be rendered as plain text, JSON or
// YAML. Compare measures how far apart the digests of two inputs are,
// which makes the avalanche effect visible.
package explain
