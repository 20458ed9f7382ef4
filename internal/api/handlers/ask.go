package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cloo-solutions/datachat/internal/api"
	"github.com/cloo-solutions/datachat/internal/domain"
)

type QuestionService interface {
	Process(ctx context.Context, question string) domain.AnswerResult
}

type AskHandler struct {
	svc QuestionService
}

func NewAskHandler(svc QuestionService) *AskHandler {
	return &AskHandler{svc: svc}
}

type AskRequest struct {
	Question string `json:"question"`
}

// Ask runs a question through the full pipeline. Pipeline failures still
// return 200: the AnswerResult carries its own error field and the client
// always gets a displayable answer.
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		api.Error(w, http.StatusBadRequest, "question is required")
		return
	}

	result := h.svc.Process(r.Context(), req.Question)
	api.Success(w, http.StatusOK, result)
}
