package holidaze

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vaberg/holidaze/internal/domain"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	VenueManager bool   `json:"venueManager"`
}

type authPayload struct {
	domain.Profile
	AccessToken string `json:"accessToken"`
}

// Login authenticates against the upstream API and returns the profile
// together with its opaque bearer token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*domain.Profile, string, error) {
	query := url.Values{"_holidaze": {"true"}}
	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/auth/login", query, "", req, &payload); err != nil {
		return nil, "", err
	}
	profile := payload.Profile
	return &profile, payload.AccessToken, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*domain.Profile, error) {
	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, "", req, &payload); err != nil {
		return nil, err
	}
	profile := payload.Profile
	return &profile, nil
}
