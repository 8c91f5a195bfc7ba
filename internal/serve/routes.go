package serve

import "net/http"

func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.HandleIndex)
	mux.HandleFunc("GET /chart", handler.HandleChart)
	mux.HandleFunc("GET /healthz", handler.HandleHealth)
}
