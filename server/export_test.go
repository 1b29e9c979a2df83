package server

// MiddlewareForTest exposes middleware.
var MiddlewareForTest = middleware
