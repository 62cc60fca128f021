package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"fairway-backend/internal/repository"
	"fairway-backend/internal/service"
)

// CatalogHandler exposes plain CRUD over the non-workflow collections.
type CatalogHandler struct {
	svc      service.CatalogService
	pageSize int
}

func NewCatalogHandler(svc service.CatalogService, pageSize int) *CatalogHandler {
	return &CatalogHandler{svc: svc, pageSize: pageSize}
}

func (h *CatalogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	collection := mux.Vars(r)["collection"]

	pageSize := h.pageSize
	if v := r.URL.Query().Get("pageSize"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			pageSize = n
		}
	}

	page, err := h.svc.List(r.Context(), collection, pageSize, r.URL.Query().Get("cursor"))
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	items := make([]map[string]any, 0, len(page.Items))
	for _, d := range page.Items {
		items = append(items, withID(d))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items":      items,
		"nextCursor": page.NextCursor,
		"hasMore":    page.HasMore,
	})
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doc, err := h.svc.Get(r.Context(), vars["collection"], vars["id"])
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, withID(*doc))
}

func (h *CatalogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := decodeBody(r, &fields); err != nil || fields == nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.svc.Create(r.Context(), mux.Vars(r)["collection"], fields)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *CatalogHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := decodeBody(r, &fields); err != nil || fields == nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vars := mux.Vars(r)
	if err := h.svc.Update(r.Context(), vars["collection"], vars["id"], fields); err != nil {
		writeCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.Delete(r.Context(), vars["collection"], vars["id"]); err != nil {
		writeCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func withID(d repository.Document) map[string]any {
	out := make(map[string]any, len(d.Data)+1)
	for k, v := range d.Data {
		out[k] = v
	}
	out["id"] = d.ID
	return out
}

func writeCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case strings.HasPrefix(err.Error(), "unknown collection"):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "store operation failed")
	}
}
