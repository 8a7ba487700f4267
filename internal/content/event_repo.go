package content

import (
	"context"
	"fmt"

	"github.com/Mr-Gerald/graceful-path-web/ent"
	"github.com/Mr-Gerald/graceful-path-web/ent/llmrequestevent"
	"github.com/Mr-Gerald/graceful-path-web/internal/llm"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, e llm.RequestEvent) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetProvider(e.Provider).
		SetModel(e.Model).
		SetPurpose(e.Purpose).
		SetInputTokens(e.InputTokens).
		SetOutputTokens(e.OutputTokens).
		SetLatencyMs(e.LatencyMs).
		SetSuccess(e.Success).
		SetErrorMessage(e.ErrorMessage).
		SetRequestBody(e.RequestBody).
		SetResponseBody(e.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) Recent(ctx context.Context, limit int) ([]LLMRequestEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	events := make([]LLMRequestEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, LLMRequestEvent{
			ID:           row.ID,
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
			CreatedAt:    row.CreatedAt,
		})
	}
	return events, nil
}
