// Package api holds the HTTP API document and serves it.
package api

import (
	_ "embed"
	"net/http"

	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var spec []byte

type document struct{}

func (document) ReadDoc() string {
	return string(spec)
}

func init() {
	swag.Register(swag.Name, document{})
}

// Spec returns the raw OpenAPI document.
func Spec() []byte {
	return spec
}

// RegisterDocsRoutes serves the registered document at /openapi.yaml.
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte(doc))
	})
}
