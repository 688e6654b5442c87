package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPath is where Pprof serves the runtime profiles.
const PprofPath = "/debug/pprof/"

// Pprof returns a handler for the net/http/pprof endpoints under PprofPath.
// It must be mounted at PprofPath itself since pprof.Index resolves named
// profiles such as goroutine or heap from the full request path.
func Pprof() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET "+PprofPath, pprof.Index)
	mux.HandleFunc("GET "+PprofPath+"cmdline", pprof.Cmdline)
	mux.HandleFunc("GET "+PprofPath+"profile", pprof.Profile)
	mux.HandleFunc(PprofPath+"symbol", pprof.Symbol)
	mux.HandleFunc("GET "+PprofPath+"trace", pprof.Trace)

	return mux
}
