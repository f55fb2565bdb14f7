package dto

import (
	"time"

	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/appointment"
)

// AppointmentRequest representa a requisição de agendamento
type AppointmentRequest struct {
	ClientID  string             `json:"cliente_id" binding:"required"`
	PetID     string             `json:"pet_id" binding:"required"`
	ServiceID string             `json:"servico_id" binding:"required"`
	StaffID   *string            `json:"funcionario_id"`
	Date      string             `json:"data" binding:"required"`
	StartTime string             `json:"hora_inicio" binding:"required"`
	EndTime   string             `json:"hora_fim" binding:"required"`
	Status    appointment.Status `json:"status" binding:"omitempty,oneof=agendado confirmado em_andamento concluido cancelado"`
	Notes     string             `json:"observacoes"`
}

// AppointmentResponse representa a resposta de agendamento
type AppointmentResponse struct {
	ID          string             `json:"id"`
	ClientID    string             `json:"cliente_id"`
	ClientName  string             `json:"cliente_nome"`
	PetID       string             `json:"pet_id"`
	PetName     string             `json:"pet_nome"`
	ServiceID   string             `json:"servico_id"`
	ServiceName string             `json:"servico_nome"`
	StaffID     *string            `json:"funcionario_id"`
	StaffName   string             `json:"funcionario_nome,omitempty"`
	Date        time.Time          `json:"data"`
	StartTime   string             `json:"hora_inicio"`
	EndTime     string             `json:"hora_fim"`
	Status      appointment.Status `json:"status"`
	Notes       string             `json:"observacoes"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// AppointmentListResponse representa a resposta de lista de agendamentos
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"agendamentos"`
	Pagination   PaginationMeta        `json:"pagination"`
}

// ToAppointmentResponse converte a entidade para o DTO de resposta
func ToAppointmentResponse(a *appointment.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		ClientID:    a.ClientID,
		ClientName:  a.ClientName,
		PetID:       a.PetID,
		PetName:     a.PetName,
		ServiceID:   a.ServiceID,
		ServiceName: a.ServiceName,
		StaffID:     a.StaffID,
		StaffName:   a.StaffName,
		Date:        a.Date,
		StartTime:   a.StartTime.Format("15:04"),
		EndTime:     a.EndTime.Format("15:04"),
		Status:      a.Status,
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToAppointmentListResponse converte a lista de entidades para o DTO de listagem
func ToAppointmentListResponse(list []*appointment.Appointment, total int, p Pagination) AppointmentListResponse {
	items := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, ToAppointmentResponse(a))
	}

	return AppointmentListResponse{
		Appointments: items,
		Pagination:   NewPaginationMeta(total, p),
	}
}
