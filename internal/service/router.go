package service

import (
	"context"
	"log"
	"strings"

	"github.com/cloo-solutions/datachat/internal/domain"
	"github.com/cloo-solutions/datachat/internal/telemetry"
)

// GreetingMessage answers general conversation without touching the model or
// the warehouse.
const GreetingMessage = "Hello! I'm your supply chain analytics assistant. " +
	"Ask me about sales, products, stores, or how our metrics are defined."

// failureMessage is shown whenever a pipeline stage fails; the technical
// detail travels in the Error field instead.
const failureMessage = "I encountered an error processing your question. Please try rephrasing it."

// Generator produces a completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ContextRetriever resolves the knowledge context relevant to a question.
type ContextRetriever interface {
	RelevantContext(ctx context.Context, query string) (string, error)
}

// Warehouse executes a generated query against the analytical database.
type Warehouse interface {
	Execute(ctx context.Context, query string) (*domain.Table, error)
}

// QueryRouter drives a question through classification, retrieval, generation
// and execution. Process never returns an error: every failure is folded into
// the AnswerResult so callers always have something to show the user.
type QueryRouter struct {
	llm       Generator
	retriever ContextRetriever
	warehouse Warehouse
	schema    string
}

// NewQueryRouter builds a router over a fixed schema snapshot. The schema is
// formatted once here; prompts are stable for the router's lifetime.
func NewQueryRouter(llm Generator, retriever ContextRetriever, warehouse Warehouse, schema domain.SchemaDescriptor) *QueryRouter {
	return &QueryRouter{
		llm:       llm,
		retriever: retriever,
		warehouse: warehouse,
		schema:    FormatSchema(schema),
	}
}

// Process answers a single question end to end.
func (r *QueryRouter) Process(ctx context.Context, question string) domain.AnswerResult {
	ctx, span := telemetry.StartSpan(ctx, "QueryRouter.Process", telemetry.SpanAttributes{
		Operation: "process",
	})
	defer span.End()

	if strings.TrimSpace(question) == "" {
		return failureResult(ctx, "", "", domain.ErrEmptyQuestion)
	}
	if r.llm == nil {
		return failureResult(ctx, "", "", domain.ErrNotConfigured)
	}

	classification, err := r.Classify(ctx, question)
	if err != nil {
		return failureResult(ctx, "", "", err)
	}

	switch classification {
	case domain.ClassificationGeneral:
		return domain.AnswerResult{
			Answer:         GreetingMessage,
			Classification: domain.ClassificationGeneral,
		}
	case domain.ClassificationExplanation:
		return r.explain(ctx, question)
	default:
		return r.answerWithData(ctx, question)
	}
}

// Classify asks the model for a label. An unparseable label is recovered
// locally: the question is treated as a data query rather than failing the
// whole request.
func (r *QueryRouter) Classify(ctx context.Context, question string) (domain.QueryClassification, error) {
	raw, err := r.llm.Generate(ctx, classificationPrompt(question))
	if err != nil {
		return "", domain.NewDomainErrorWithCause(domain.ErrCodeClassification,
			"classification request failed", err)
	}

	classification, err := domain.ParseClassification(raw)
	if err != nil {
		log.Printf("unrecognized classification %q, defaulting to data_query", strings.TrimSpace(raw))
		return domain.ClassificationDataQuery, nil
	}
	return classification, nil
}

// GenerateQuery produces a cleaned SQL statement for a question given its
// retrieved context.
func (r *QueryRouter) GenerateQuery(ctx context.Context, question, knowledgeContext string) (string, error) {
	raw, err := r.llm.Generate(ctx, sqlPrompt(r.schema, knowledgeContext, question))
	if err != nil {
		return "", domain.NewDomainErrorWithCause(domain.ErrCodeQueryGeneration,
			"query generation request failed", err)
	}

	query := stripCodeFences(raw)
	if query == "" {
		return "", domain.ErrEmptyGeneratedQuery
	}
	return query, nil
}

func (r *QueryRouter) explain(ctx context.Context, question string) domain.AnswerResult {
	knowledgeContext, err := r.retriever.RelevantContext(ctx, question)
	if err != nil {
		return failureResult(ctx, domain.ClassificationExplanation, "", err)
	}

	answer, err := r.llm.Generate(ctx, explanationPrompt(knowledgeContext, question))
	if err != nil {
		return failureResult(ctx, domain.ClassificationExplanation, "",
			domain.NewDomainErrorWithCause(domain.ErrCodeInternalError, "explanation request failed", err))
	}

	return domain.AnswerResult{
		Answer:         strings.TrimSpace(answer),
		Classification: domain.ClassificationExplanation,
	}
}

func (r *QueryRouter) answerWithData(ctx context.Context, question string) domain.AnswerResult {
	knowledgeContext, err := r.retriever.RelevantContext(ctx, question)
	if err != nil {
		return failureResult(ctx, domain.ClassificationDataQuery, "", err)
	}

	query, err := r.GenerateQuery(ctx, question, knowledgeContext)
	if err != nil {
		return failureResult(ctx, domain.ClassificationDataQuery, "", err)
	}

	table, err := r.warehouse.Execute(ctx, query)
	if err != nil {
		// The query survives into the result so a failed execution can
		// still be inspected.
		return failureResult(ctx, domain.ClassificationDataQuery, query,
			domain.NewDomainErrorWithCause(domain.ErrCodeExecution, "query execution failed", err))
	}

	return domain.AnswerResult{
		Answer:         SummarizeTable(table),
		Table:          table,
		GeneratedQuery: query,
		Classification: domain.ClassificationDataQuery,
	}
}

func failureResult(ctx context.Context, classification domain.QueryClassification, query string, err error) domain.AnswerResult {
	log.Printf("question processing failed: %v", err)
	telemetry.CaptureError(ctx, err, map[string]string{
		"classification": string(classification),
		"error_code":     domain.ErrorCode(err),
	})
	return domain.AnswerResult{
		Answer:         failureMessage,
		GeneratedQuery: query,
		Classification: classification,
		Error:          err.Error(),
	}
}
