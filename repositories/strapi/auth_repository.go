package strapi

import (
	"context"

	api "padelbot/api/strapi"
	"padelbot/domain/auth"
)

type authRepository struct {
	client *api.Client
}

// NewAuthRepository creates the REST-backed identity repository. The auth
// endpoints return bare objects, not the { data, meta } envelope.
func NewAuthRepository(client *api.Client) auth.Repository {
	return &authRepository{client: client}
}

type authUserDTO struct {
	ID       int64          `json:"id"`
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Jugador  *jugadorRefDTO `json:"jugador"`
}

type authResponseDTO struct {
	JWT  string      `json:"jwt"`
	User authUserDTO `json:"user"`
}

func (d *authResponseDTO) toDomain() *auth.Session {
	s := &auth.Session{
		Token: d.JWT,
		User: auth.Profile{
			ID:       d.User.ID,
			Username: d.User.Username,
			Email:    d.User.Email,
		},
	}
	if d.User.Jugador != nil {
		s.User.PlayerID = d.User.Jugador.DocumentID
	}
	return s
}

func (r *authRepository) Login(ctx context.Context, identifier, password string) (*auth.Session, error) {
	body := map[string]string{"identifier": identifier, "password": password}
	var resp authResponseDTO
	if err := r.client.Post(ctx, "/api/auth/local", "", body, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

func (r *authRepository) Register(ctx context.Context, username, email, password string) (*auth.Session, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var resp authResponseDTO
	if err := r.client.Post(ctx, "/api/auth/local/register", "", body, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

func (r *authRepository) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return r.client.Post(ctx, "/api/auth/forgot-password", "", body, nil)
}

func (r *authRepository) ConfirmEmail(ctx context.Context, token string) error {
	q := api.NewQuery().Param("confirmation", token)
	return r.client.Get(ctx, "/api/auth/email-confirmation", q, nil)
}
