package handlers

import (
	"context"
	"net/http"

	"github.com/cloo-solutions/datachat/internal/api"
	"github.com/cloo-solutions/datachat/internal/domain"
)

type SchemaService interface {
	GetSchema(ctx context.Context) (domain.SchemaDescriptor, error)
}

type SchemaHandler struct {
	svc SchemaService
}

func NewSchemaHandler(svc SchemaService) *SchemaHandler {
	return &SchemaHandler{svc: svc}
}

type SchemaResponse struct {
	Tables domain.SchemaDescriptor `json:"tables"`
}

// GetSchema returns the warehouse catalog snapshot.
func (h *SchemaHandler) GetSchema(w http.ResponseWriter, r *http.Request) {
	if h.svc == nil {
		api.Error(w, http.StatusServiceUnavailable, "warehouse not configured")
		return
	}

	schema, err := h.svc.GetSchema(r.Context())
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, SchemaResponse{Tables: schema})
}
