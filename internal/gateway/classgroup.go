package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/crechehub/agendaservice/internal/domain"
)

type turmaDTO struct {
	ID               int    `json:"id"`
	Nome             string `json:"nome"`
	CapacidadeMaxima int    `json:"capacidadeMaxima"`
	IdadeMinima      int    `json:"idadeMinima"`
	IdadeMaxima      int    `json:"idadeMaxima"`
	DataCriacao      string `json:"dataCriacao"`
	Ativo            bool   `json:"ativo"`
	CriancasIDs      []int  `json:"criancasIds"`
	AgendamentosIDs  []int  `json:"agendamentosIds"`
}

type criarTurmaDTO struct {
	Nome             string `json:"nome"`
	CapacidadeMaxima int    `json:"capacidadeMaxima"`
	IdadeMinima      int    `json:"idadeMinima"`
	IdadeMaxima      int    `json:"idadeMaxima"`
}

type atualizarTurmaDTO struct {
	ID               int    `json:"id"`
	Nome             string `json:"nome"`
	CapacidadeMaxima int    `json:"capacidadeMaxima"`
	IdadeMinima      int    `json:"idadeMinima"`
	IdadeMaxima      int    `json:"idadeMaxima"`
	Ativo            bool   `json:"ativo"`
	CriancasIDs      []int  `json:"criancasIds,omitempty"`
	AgendamentosIDs  []int  `json:"agendamentosIds,omitempty"`
}

func (d turmaDTO) toDomain() domain.ClassGroup {
	return domain.ClassGroup{
		ID:         d.ID,
		Name:       d.Nome,
		Capacity:   d.CapacidadeMaxima,
		MinAge:     d.IdadeMinima,
		MaxAge:     d.IdadeMaxima,
		CreatedAt:  parseTimestamp(d.DataCriacao),
		Active:     d.Ativo,
		ChildIDs:   d.CriancasIDs,
		BookingIDs: d.AgendamentosIDs,
	}
}

func (c *Client) ListClassGroups(ctx context.Context) ([]domain.ClassGroup, error) {
	var dtos []turmaDTO
	if err := c.getJSON(ctx, "/api/Turma", &dtos); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}

	res := make([]domain.ClassGroup, 0, len(dtos))
	for _, dto := range dtos {
		res = append(res, dto.toDomain())
	}
	return res, nil
}

func (c *Client) CreateClassGroup(ctx context.Context, input domain.CreateClassInput) (*domain.ClassGroup, error) {
	body := criarTurmaDTO{
		Nome:             input.Name,
		CapacidadeMaxima: input.Capacity,
		IdadeMinima:      input.MinAge,
		IdadeMaxima:      input.MaxAge,
	}

	var dto turmaDTO
	if err := c.send(ctx, http.MethodPost, "/api/Turma", body, &dto); err != nil {
		return nil, fmt.Errorf("create class: %w", err)
	}

	class := dto.toDomain()
	return &class, nil
}

func (c *Client) UpdateClassGroup(ctx context.Context, class domain.ClassGroup) (*domain.ClassGroup, error) {
	body := atualizarTurmaDTO{
		ID:               class.ID,
		Nome:             class.Name,
		CapacidadeMaxima: class.Capacity,
		IdadeMinima:      class.MinAge,
		IdadeMaxima:      class.MaxAge,
		Ativo:            class.Active,
		CriancasIDs:      class.ChildIDs,
		AgendamentosIDs:  class.BookingIDs,
	}

	var dto turmaDTO
	err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/Turma/%d", class.ID), body, &dto)
	if isStatus(err, http.StatusNotFound) {
		return nil, domain.ErrClassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update class %d: %w", class.ID, err)
	}

	updated := dto.toDomain()
	return &updated, nil
}
