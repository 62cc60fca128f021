package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fairway-backend/internal/domain"
	"fairway-backend/internal/repository"
	"fairway-backend/internal/service"
	"fairway-backend/internal/workflow"
)

// AdminHandler exposes the request workflows over JSON/HTTP. It implements no
// transition logic; decisions come back as {success, message} results that
// the console displays verbatim.
type AdminHandler struct {
	svc      service.AdminService
	pageSize int
}

func NewAdminHandler(svc service.AdminService, pageSize int) *AdminHandler {
	return &AdminHandler{svc: svc, pageSize: pageSize}
}

var kindSlugs = map[string]workflow.Kind{
	"coach-to-club":      workflow.KindCoachToClub,
	"pupil-to-coach":     workflow.KindPupilToCoach,
	"coach-verification": workflow.KindCoachVerification,
}

func requestKind(r *http.Request) (workflow.Kind, bool) {
	kind, ok := kindSlugs[mux.Vars(r)["kind"]]
	return kind, ok
}

func (h *AdminHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	kind, ok := requestKind(r)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown request kind")
		return
	}

	var body struct {
		ReviewedBy string `json:"reviewedBy"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res := h.svc.ApproveRequest(r.Context(), kind, mux.Vars(r)["id"], body.ReviewedBy)
	writeJSON(w, http.StatusOK, res)
}

func (h *AdminHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	kind, ok := requestKind(r)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown request kind")
		return
	}

	var body struct {
		ReviewNote string `json:"reviewNote"`
		ReviewedBy string `json:"reviewedBy"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res := h.svc.RejectRequest(r.Context(), kind, mux.Vars(r)["id"], body.ReviewNote, body.ReviewedBy)
	writeJSON(w, http.StatusOK, res)
}

func (h *AdminHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	kind, ok := requestKind(r)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown request kind")
		return
	}

	pageSize := h.pageSize
	if v := r.URL.Query().Get("pageSize"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			pageSize = n
		}
	}

	page, err := h.svc.ListRequests(r.Context(), kind, pageSize, r.URL.Query().Get("cursor"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list requests")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items":      decodeRequests(kind, page.Items),
		"nextCursor": page.NextCursor,
		"hasMore":    page.HasMore,
	})
}

func (h *AdminHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	kind, ok := requestKind(r)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown request kind")
		return
	}

	doc, err := h.svc.GetRequest(r.Context(), kind, mux.Vars(r)["id"])
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "request not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get request")
		return
	}

	items := decodeRequests(kind, []repository.Document{*doc})
	writeJSON(w, http.StatusOK, items[0])
}

func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	kind, ok := requestKind(r)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown request kind")
		return
	}

	var fields map[string]any
	if err := decodeBody(r, &fields); err != nil || fields == nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.svc.CreateRequest(r.Context(), kind, fields)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	kind, ok := requestKind(r)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown request kind")
		return
	}

	if err := h.svc.DeleteRequest(r.Context(), kind, mux.Vars(r)["id"]); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "request not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete request")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeRequests(kind workflow.Kind, docs []repository.Document) []any {
	items := make([]any, 0, len(docs))
	for _, d := range docs {
		switch kind {
		case workflow.KindCoachToClub:
			items = append(items, domain.CoachToClubRequestFromDoc(d.ID, d.Data))
		case workflow.KindPupilToCoach:
			items = append(items, domain.PupilToCoachRequestFromDoc(d.ID, d.Data))
		case workflow.KindCoachVerification:
			items = append(items, domain.CoachVerificationRequestFromDoc(d.ID, d.Data))
		}
	}
	return items
}
