package server

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

	"github.com/cloo-solutions/datachat/internal/api/handlers"
	"github.com/cloo-solutions/datachat/internal/domain"
)

type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) Process(ctx context.Context, question string) domain.AnswerResult {
	args := m.Called(ctx, question)
	return args.Get(0).(domain.AnswerResult)
}

type MockIngestService struct {
	mock.Mock
}

func (m *MockIngestService) Ingest(ctx context.Context, docs []domain.Document) error {
	args := m.Called(ctx, docs)
	return args.Error(0)
}

type MockSchemaService struct {
	mock.Mock
}

func (m *MockSchemaService) GetSchema(ctx context.Context) (domain.SchemaDescriptor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.SchemaDescriptor), args.Error(1)
}

func newTestRouter(question *MockQuestionService, ingest *MockIngestService, schema *MockSchemaService) http.Handler {
	return NewRouter(RouterConfig{
		AskHandler:       handlers.NewAskHandler(question),
		DocumentsHandler: handlers.NewDocumentsHandler(ingest),
		SchemaHandler:    handlers.NewSchemaHandler(schema),
	})
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(new(MockQuestionService), new(MockIngestService), new(MockSchemaService))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "ok", data["status"])
}

func TestRouter_Ask(t *testing.T) {
	question := new(MockQuestionService)
	question.On("Process", mock.Anything, "hello").Return(domain.AnswerResult{
		Answer:         "Hello! I'm your supply chain analytics assistant. Ask me about sales, products, stores, or how our metrics are defined.",
		Classification: domain.ClassificationGeneral,
	})
	router := newTestRouter(question, new(MockIngestService), new(MockSchemaService))

	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question":"hello"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	question.AssertExpectations(t)
}

func TestRouter_Documents(t *testing.T) {
	ingest := new(MockIngestService)
	ingest.On("Ingest", mock.Anything, mock.Anything).Return(nil)
	router := newTestRouter(new(MockQuestionService), ingest, new(MockSchemaService))

	req := httptest.NewRequest(http.MethodPost, "/documents",
		strings.NewReader(`{"text":"DIM_DATE is pre-populated for 10 years.","source_tag":"business_rules"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	ingest.AssertExpectations(t)
}

func TestRouter_Schema(t *testing.T) {
	schema := new(MockSchemaService)
	schema.On("GetSchema", mock.Anything).Return(domain.SchemaDescriptor{}, nil)
	router := newTestRouter(new(MockQuestionService), new(MockIngestService), schema)

	req := httptest.NewRequest(http.MethodGet, "/schema", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(new(MockQuestionService), new(MockIngestService), new(MockSchemaService))

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_BodyTooLarge(t *testing.T) {
	router := newTestRouter(new(MockQuestionService), new(MockIngestService), new(MockSchemaService))

	body := strings.NewReader(`{"question":"` + strings.Repeat("a", 2*1024*1024) + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/ask", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
