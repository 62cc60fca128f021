package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the admin console API. Request collections are only
// reachable through the workflow routes; everything else goes through the
// catalog CRUD routes.
func NewRouter(admin *AdminHandler, catalog *CatalogHandler) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/requests/{kind}", admin.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/requests/{kind}", admin.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/requests/{kind}/{id}", admin.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/requests/{kind}/{id}", admin.HandleDelete).Methods(http.MethodDelete)
	api.HandleFunc("/requests/{kind}/{id}/approve", admin.HandleApprove).Methods(http.MethodPost)
	api.HandleFunc("/requests/{kind}/{id}/reject", admin.HandleReject).Methods(http.MethodPost)

	api.HandleFunc("/catalog/{collection}", catalog.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/catalog/{collection}", catalog.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/catalog/{collection}/{id}", catalog.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/catalog/{collection}/{id}", catalog.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/catalog/{collection}/{id}", catalog.HandleDelete).Methods(http.MethodDelete)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return r
}
