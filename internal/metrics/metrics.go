// Package metrics exposes the live runtime dashboard the rest of the stack
// wires up the same way: a statsviz-backed debug endpoint started on its
// own listener, independent of the main request-serving port.
package metrics

import (
	"net/http"

	"github.com/arl/statsviz"
)

// Serve registers the statsviz dashboard at /debug/statsviz/ and blocks
// serving it on addr. Callers run it in its own goroutine.
func Serve(addr string) error {
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		return err
	}
	return http.ListenAndServe(addr, mux)
}
