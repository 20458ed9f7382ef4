package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cloo-solutions/datachat/internal/api"
	"github.com/cloo-solutions/datachat/internal/domain"
)

type IngestService interface {
	Ingest(ctx context.Context, docs []domain.Document) error
}

type DocumentsHandler struct {
	svc IngestService
}

func NewDocumentsHandler(svc IngestService) *DocumentsHandler {
	return &DocumentsHandler{svc: svc}
}

type IngestRequest struct {
	Text      string `json:"text"`
	SourceTag string `json:"source_tag"`
}

type IngestResponse struct {
	Status    string `json:"status"`
	SourceTag string `json:"source_tag"`
}

// Ingest adds one document to the knowledge corpus. The corpus grows
// monotonically; there is no replace or delete.
func (h *DocumentsHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var req IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		api.Error(w, http.StatusBadRequest, "text is required")
		return
	}
	if strings.TrimSpace(req.SourceTag) == "" {
		api.Error(w, http.StatusBadRequest, "source_tag is required")
		return
	}

	doc := domain.Document{Text: req.Text, SourceTag: req.SourceTag}
	if err := h.svc.Ingest(r.Context(), []domain.Document{doc}); err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusCreated, IngestResponse{Status: "indexed", SourceTag: req.SourceTag})
}
