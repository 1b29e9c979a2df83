// Package digester calculates and verifies MD5 file digests using the md5
// engine. Digests are stored in companion .md5 files alongside the
// original in the md5sum format, so a directory can also be checked with
// standard tooling.
package digester
