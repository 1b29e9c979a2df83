// Package server exposes the md5 engine over a small JSON HTTP API. It is
// the programmatic counterpart of a "type some text, press the button"
// page: every handler reads its input, calls md5.Sum, md5.New or the
// explain package once, and writes the result.
//
// Routes, all under /api/v1:
//
//	POST /hash      {"text": "..."}        -> {"digest": "...", "bytes": n}
//	POST /hash/raw  request body is hashed -> {"digest": "...", "bytes": n}
//	POST /explain   {"text": "..."}        -> step-by-step report
//	POST /compare   {"a": "...", "b": "..."} -> avalanche comparison
//	GET  /health                           -> {"status": "ok"}
//
// Errors are returned as {"error": {"code": "...", "message": "..."}}.
package server
