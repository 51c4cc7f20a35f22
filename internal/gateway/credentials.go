package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/crechehub/agendaservice/internal/domain"
)

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type usuarioDTO struct {
	ID          int    `json:"id"`
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Cargo       string `json:"cargo"`
	DataCriacao string `json:"dataCriacao"`
	Ativo       bool   `json:"ativo"`
}

func (d usuarioDTO) toDomain() domain.User {
	return domain.User{
		ID:        d.ID,
		Name:      d.Nome,
		Email:     d.Email,
		Role:      d.Cargo,
		CreatedAt: parseTimestamp(d.DataCriacao),
		Active:    d.Ativo,
	}
}

// Login exchanges credentials for a bearer token. It never attaches an
// existing token and never fires the unauthorized hook: a 401 here means bad
// credentials, not an expired session.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := c.request(ctx, http.MethodPost, "/api/Credenciais/login", "", loginRequest{Email: email, Senha: password}, &resp)
	if isStatus(err, http.StatusUnauthorized) || isStatus(err, http.StatusBadRequest) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login: empty token in response")
	}
	return resp.Token, nil
}

// UserDetails resolves the user behind an explicit token. The session manager
// calls it with a candidate token during login and restore, so the 401 hook is
// bypassed and expiry is reported directly.
func (c *Client) UserDetails(ctx context.Context, token string) (*domain.User, error) {
	var dto usuarioDTO
	err := c.request(ctx, http.MethodGet, "/api/user/details", token, nil, &dto)
	if isStatus(err, http.StatusUnauthorized) {
		return nil, domain.ErrSessionExpired
	}
	if err != nil {
		return nil, fmt.Errorf("user details: %w", err)
	}
	user := dto.toDomain()
	return &user, nil
}
