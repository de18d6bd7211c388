package strapi

import (
	"context"

	api "padelbot/api/strapi"
	"padelbot/domain/feedback"
)

type feedbackRepository struct {
	client *api.Client
}

// NewFeedbackRepository creates the REST-backed suggestion repository.
func NewFeedbackRepository(client *api.Client) feedback.Repository {
	return &feedbackRepository{client: client}
}

func (r *feedbackRepository) Submit(ctx context.Context, token, text string) error {
	body := map[string]any{
		"data": map[string]string{"contenido": text},
	}
	return r.client.Post(ctx, "/api/sugerencias", token, body, nil)
}
