// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Allows configured browser origins and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//
// Provided helpers:
//   - Pprof: Serves the net/http/pprof handlers under PprofPath.
//   - GetClientIP, GetRequestID: request introspection used in logs.
package controller
