// Package swaggerkit mounts the swagger UI and the API document
package swaggerkit

import (
	"net/http"

	phttp "tzconv/internal/platform/net/http"
)

// Mount serves /docs/ and /docs/doc.json when enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusPermanentRedirect)
	})
	r.Get("/docs/doc.json", serveDocJSON())
	phttp.MountSwagger(r, enabled)
}
