package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/crechehub/agendaservice/internal/domain"
)

type criarUsuarioDTO struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Cargo string `json:"cargo"`
	Senha string `json:"senha"`
}

type atualizarUsuarioDTO struct {
	ID    int    `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Cargo string `json:"cargo"`
	Ativo bool   `json:"ativo"`
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var dtos []usuarioDTO
	if err := c.getJSON(ctx, "/api/Usuario", &dtos); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	res := make([]domain.User, 0, len(dtos))
	for _, dto := range dtos {
		res = append(res, dto.toDomain())
	}
	return res, nil
}

func (c *Client) CreateUser(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	body := criarUsuarioDTO{
		Nome:  input.Name,
		Email: input.Email,
		Cargo: input.Role,
		Senha: input.Password,
	}

	var dto usuarioDTO
	if err := c.send(ctx, http.MethodPost, "/api/Usuario", body, &dto); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	user := dto.toDomain()
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	body := atualizarUsuarioDTO{
		ID:    user.ID,
		Nome:  user.Name,
		Email: user.Email,
		Cargo: user.Role,
		Ativo: user.Active,
	}

	var dto usuarioDTO
	err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/Usuario/%d", user.ID), body, &dto)
	if isStatus(err, http.StatusNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", user.ID, err)
	}

	updated := dto.toDomain()
	return &updated, nil
}
