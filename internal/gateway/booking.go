package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/crechehub/agendaservice/internal/domain"
)

// The upstream nests the full child and class objects in booking responses;
// only their ids survive the mapping, the flat entities come from their own
// collections.
type agendamentoDTO struct {
	ID          int        `json:"id"`
	DataInicial string     `json:"dataInicial"`
	DataFinal   string     `json:"dataFinal"`
	Observacao  string     `json:"observacao"`
	Crianca     criancaDTO `json:"crianca"`
	Turma       turmaDTO   `json:"turma"`
	DataCriacao string     `json:"dataCriacao"`
	Ativo       bool       `json:"ativo"`
}

type criarAgendamentoDTO struct {
	IDCrianca   int    `json:"idCrianca"`
	IDTurma     int    `json:"idTurma"`
	DataInicial string `json:"dataInicial"`
	DataFinal   string `json:"dataFinal"`
	Observacao  string `json:"observacao,omitempty"`
}

type atualizarAgendamentoDTO struct {
	ID          int    `json:"id"`
	IDCrianca   int    `json:"idCrianca"`
	IDTurma     int    `json:"idTurma"`
	DataInicial string `json:"dataInicial"`
	DataFinal   string `json:"dataFinal"`
	Observacoes string `json:"observacoes"`
	Ativo       bool   `json:"ativo"`
}

func (d agendamentoDTO) toDomain() (domain.Booking, error) {
	start, err := domain.ParseISODate(d.DataInicial)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("booking %d: %w", d.ID, err)
	}
	end, err := domain.ParseISODate(d.DataFinal)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("booking %d: %w", d.ID, err)
	}
	return domain.Booking{
		ID:        d.ID,
		ChildID:   d.Crianca.ID,
		ClassID:   d.Turma.ID,
		StartDate: start,
		EndDate:   end,
		Note:      d.Observacao,
		CreatedAt: parseTimestamp(d.DataCriacao),
		Active:    d.Ativo,
	}, nil
}

func (c *Client) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var dtos []agendamentoDTO
	if err := c.getJSON(ctx, "/api/Agendamento", &dtos); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	res := make([]domain.Booking, 0, len(dtos))
	for _, dto := range dtos {
		b, err := dto.toDomain()
		if err != nil {
			return nil, fmt.Errorf("list bookings: %w", err)
		}
		res = append(res, b)
	}
	return res, nil
}

func (c *Client) CreateBooking(ctx context.Context, input domain.BookingInput) (*domain.Booking, error) {
	body := criarAgendamentoDTO{
		IDCrianca:   input.ChildID,
		IDTurma:     input.ClassID,
		DataInicial: input.StartDate.ISO(),
		DataFinal:   input.EndDate.ISO(),
		Observacao:  input.Note,
	}

	var dto agendamentoDTO
	if err := c.send(ctx, http.MethodPost, "/api/Agendamento", body, &dto); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	b, err := dto.toDomain()
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return &b, nil
}

// UpdateBooking persists edits and cancellations alike; a cancellation is an
// update with Active=false.
func (c *Client) UpdateBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	body := atualizarAgendamentoDTO{
		ID:          booking.ID,
		IDCrianca:   booking.ChildID,
		IDTurma:     booking.ClassID,
		DataInicial: booking.StartDate.ISO(),
		DataFinal:   booking.EndDate.ISO(),
		Observacoes: booking.Note,
		Ativo:       booking.Active,
	}

	var dto agendamentoDTO
	err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/Agendamento/%d", booking.ID), body, &dto)
	if isStatus(err, http.StatusNotFound) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update booking %d: %w", booking.ID, err)
	}

	b, err := dto.toDomain()
	if err != nil {
		return nil, fmt.Errorf("update booking %d: %w", booking.ID, err)
	}
	return &b, nil
}
