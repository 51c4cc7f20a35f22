package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/crechehub/agendaservice/internal/domain"
)

type criancaDTO struct {
	ID             int    `json:"id"`
	Nome           string `json:"nome"`
	DataNascimento string `json:"dataNascimento"`
	Responsavel    string `json:"responsavel"`
	DataCriacao    string `json:"dataCriacao"`
	Ativo          bool   `json:"ativo"`
}

type criarCriancaDTO struct {
	Nome           string `json:"nome"`
	DataNascimento string `json:"dataNascimento"`
	Responsavel    string `json:"responsavel"`
}

type editarCriancaDTO struct {
	ID             int    `json:"id"`
	Nome           string `json:"nome"`
	DataNascimento string `json:"dataNascimento"`
	Responsavel    string `json:"responsavel"`
	Ativo          bool   `json:"ativo"`
}

func (d criancaDTO) toDomain() (domain.Child, error) {
	birth, err := domain.ParseISODate(d.DataNascimento)
	if err != nil {
		return domain.Child{}, fmt.Errorf("child %d: %w", d.ID, err)
	}
	return domain.Child{
		ID:           d.ID,
		Name:         d.Nome,
		BirthDate:    birth,
		GuardianName: d.Responsavel,
		CreatedAt:    parseTimestamp(d.DataCriacao),
		Active:       d.Ativo,
	}, nil
}

func (c *Client) ListChildren(ctx context.Context) ([]domain.Child, error) {
	var dtos []criancaDTO
	if err := c.getJSON(ctx, "/api/Crianca", &dtos); err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}

	res := make([]domain.Child, 0, len(dtos))
	for _, dto := range dtos {
		child, err := dto.toDomain()
		if err != nil {
			return nil, fmt.Errorf("list children: %w", err)
		}
		res = append(res, child)
	}
	return res, nil
}

func (c *Client) CreateChild(ctx context.Context, input domain.CreateChildInput) (*domain.Child, error) {
	body := criarCriancaDTO{
		Nome:           input.Name,
		DataNascimento: input.BirthDate.ISO(),
		Responsavel:    input.GuardianName,
	}

	var dto criancaDTO
	if err := c.send(ctx, http.MethodPost, "/api/Crianca", body, &dto); err != nil {
		return nil, fmt.Errorf("create child: %w", err)
	}

	child, err := dto.toDomain()
	if err != nil {
		return nil, fmt.Errorf("create child: %w", err)
	}
	return &child, nil
}

// UpdateChild sends the full desired state; the upstream PUT replaces the
// record wholesale.
func (c *Client) UpdateChild(ctx context.Context, child domain.Child) (*domain.Child, error) {
	body := editarCriancaDTO{
		ID:             child.ID,
		Nome:           child.Name,
		DataNascimento: child.BirthDate.ISO(),
		Responsavel:    child.GuardianName,
		Ativo:          child.Active,
	}

	var dto criancaDTO
	err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/Crianca/%d", child.ID), body, &dto)
	if isStatus(err, http.StatusNotFound) {
		return nil, domain.ErrChildNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update child %d: %w", child.ID, err)
	}

	updated, err := dto.toDomain()
	if err != nil {
		return nil, fmt.Errorf("update child %d: %w", child.ID, err)
	}
	return &updated, nil
}
