package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cloo-solutions/datachat/internal/domain"
)

type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) Process(ctx context.Context, question string) domain.AnswerResult {
	args := m.Called(ctx, question)
	return args.Get(0).(domain.AnswerResult)
}

func TestAskHandler_Ask_Success(t *testing.T) {
	mockSvc := new(MockQuestionService)
	handler := NewAskHandler(mockSvc)

	mockSvc.On("Process", mock.Anything, "total revenue by region").Return(domain.AnswerResult{
		Answer:         "Found 2 results. The total revenue is 5,000.00.",
		GeneratedQuery: "SELECT region, SUM(total_amount) FROM fact_sales GROUP BY region",
		Classification: domain.ClassificationDataQuery,
	})

	req := httptest.NewRequest(http.MethodPost, "/ask",
		strings.NewReader(`{"question":"total revenue by region"}`))
	w := httptest.NewRecorder()

	handler.Ask(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Found 2 results. The total revenue is 5,000.00.", data["answer"])
	assert.Equal(t, "data_query", data["classification"])
	mockSvc.AssertExpectations(t)
}

func TestAskHandler_Ask_PipelineFailureStillOK(t *testing.T) {
	mockSvc := new(MockQuestionService)
	handler := NewAskHandler(mockSvc)

	mockSvc.On("Process", mock.Anything, "broken question").Return(domain.AnswerResult{
		Answer: "I encountered an error processing your question. Please try rephrasing it.",
		Error:  "[EXECUTION_ERROR] query execution failed",
	})

	req := httptest.NewRequest(http.MethodPost, "/ask",
		strings.NewReader(`{"question":"broken question"}`))
	w := httptest.NewRecorder()

	handler.Ask(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Contains(t, data["error"], "EXECUTION_ERROR")
}

func TestAskHandler_Ask_EmptyQuestion(t *testing.T) {
	handler := NewAskHandler(new(MockQuestionService))

	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question":"   "}`))
	w := httptest.NewRecorder()

	handler.Ask(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAskHandler_Ask_InvalidBody(t *testing.T) {
	handler := NewAskHandler(new(MockQuestionService))

	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`not json`))
	w := httptest.NewRecorder()

	handler.Ask(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
