package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/dto"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/repository"
	appointmentdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/appointment"
	clientdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/client"
	petdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/pet"
	servicedomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/service"
	staffdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/staff"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/logger"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/mailer"
)

// AppointmentController gerencia as requisições relacionadas a agendamentos
type AppointmentController struct {
	appointmentRepo appointmentdomain.Repository
	clientRepo      clientdomain.Repository
	petRepo         petdomain.Repository
	serviceRepo     servicedomain.Repository
	staffRepo       staffdomain.Repository
	mailer          mailer.Mailer
	logger          logger.Logger
}

// NewAppointmentController cria uma nova instância de AppointmentController
func NewAppointmentController(appointmentRepo appointmentdomain.Repository, clientRepo clientdomain.Repository, petRepo petdomain.Repository, serviceRepo servicedomain.Repository, staffRepo staffdomain.Repository, m mailer.Mailer, logger logger.Logger) *AppointmentController {
	return &AppointmentController{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		petRepo:         petRepo,
		serviceRepo:     serviceRepo,
		staffRepo:       staffRepo,
		mailer:          m,
		logger:          logger,
	}
}

// validateReferences confere cliente, pet, serviço e funcionário do agendamento.
// Retorna false quando já respondeu a requisição com o erro adequado.
func (c *AppointmentController) validateReferences(ctx *gin.Context, clientID, petID, serviceID string, staffID *string) bool {
	exists, err := c.clientRepo.Exists(ctx, clientID)
	if err != nil {
		c.logger.Error("Erro ao verificar cliente do agendamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao validar agendamento", err.Error()))
		return false
	}
	if !exists {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
		return false
	}

	p, err := c.petRepo.FindByID(ctx, petID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Pet não encontrado", ""))
			return false
		}
		c.logger.Error("Erro ao buscar pet do agendamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao validar agendamento", err.Error()))
		return false
	}
	if !p.BelongsTo(clientID) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "O pet não pertence ao cliente informado", ""))
		return false
	}

	if _, err := c.serviceRepo.FindByID(ctx, serviceID); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Serviço não encontrado", ""))
			return false
		}
		c.logger.Error("Erro ao buscar serviço do agendamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao validar agendamento", err.Error()))
		return false
	}

	if staffID != nil && *staffID != "" {
		exists, err := c.staffRepo.Exists(ctx, *staffID)
		if err != nil {
			c.logger.Error("Erro ao verificar funcionário do agendamento", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao validar agendamento", err.Error()))
			return false
		}
		if !exists {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Funcionário não encontrado", ""))
			return false
		}
	}

	return true
}

// parseSchedule converte os campos de data e horário da requisição.
// Os horários são ancorados na própria data do agendamento.
func parseSchedule(date, start, end string) (time.Time, time.Time, time.Time, error) {
	d, err := dto.ParseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, fmt.Errorf("data inválida: %w", err)
	}

	st, err := dto.ParseTimeOfDay(start)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, fmt.Errorf("hora de início inválida: %w", err)
	}

	et, err := dto.ParseTimeOfDay(end)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, fmt.Errorf("hora de fim inválida: %w", err)
	}

	startAt := time.Date(d.Year(), d.Month(), d.Day(), st.Hour(), st.Minute(), 0, 0, d.Location())
	endAt := time.Date(d.Year(), d.Month(), d.Day(), et.Hour(), et.Minute(), 0, 0, d.Location())
	return d, startAt, endAt, nil
}

// appointmentNoticeBody monta o corpo HTML dos avisos enviados ao cliente
func appointmentNoticeBody(a *appointmentdomain.Appointment, verb string) string {
	return fmt.Sprintf(
		"<p>Olá, %s!</p><p>O agendamento de <strong>%s</strong> para o pet <strong>%s</strong> de %s às %s %s.</p>",
		a.ClientName,
		a.ServiceName,
		a.PetName,
		a.Date.Format("02/01/2006"),
		a.StartTime.Format("15:04"),
		verb,
	)
}

// notifyStatus despacha o aviso de conclusão ou cancelamento ao cliente
func (c *AppointmentController) notifyStatus(a *appointmentdomain.Appointment) {
	if a.ClientEmail == "" {
		return
	}

	switch a.Status {
	case appointmentdomain.StatusCompleted:
		mailer.Dispatch(c.mailer, c.logger, a.ClientEmail, "Agendamento concluído", appointmentNoticeBody(a, "foi concluído"))
	case appointmentdomain.StatusCancelled:
		mailer.Dispatch(c.mailer, c.logger, a.ClientEmail, "Agendamento cancelado", appointmentNoticeBody(a, "foi cancelado"))
	}
}

// Create cria um novo agendamento
// @Summary Criar agendamento
// @Description Cria um agendamento validando o conflito de horário do funcionário
// @Tags agendamentos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param agendamento body dto.AppointmentRequest true "Dados do agendamento"
// @Success 201 {object} dto.AppointmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /agendamentos [post]
func (c *AppointmentController) Create(ctx *gin.Context) {
	var req dto.AppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if !c.validateReferences(ctx, req.ClientID, req.PetID, req.ServiceID, req.StaffID) {
		return
	}

	date, startAt, endAt, err := parseSchedule(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	a, err := appointmentdomain.NewAppointment(req.ClientID, req.PetID, req.ServiceID, req.StaffID, date, startAt, endAt, req.Status, req.Notes)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar agendamento", err.Error()))
		return
	}

	if err := c.appointmentRepo.Create(ctx, a); err != nil {
		if errors.Is(err, appointmentdomain.ErrConflict) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "O funcionário já possui um agendamento neste horário", ""))
			return
		}
		if errors.Is(err, repository.ErrStaffNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Funcionário não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao criar agendamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao salvar agendamento", err.Error()))
		return
	}

	created, err := c.appointmentRepo.FindByID(ctx, a.ID)
	if err != nil {
		c.logger.Error("Erro ao recarregar agendamento", "error", err)
		ctx.JSON(http.StatusCreated, dto.ToAppointmentResponse(a))
		return
	}

	if created.ClientEmail != "" {
		body := fmt.Sprintf(
			"<p>Olá, %s!</p><p>O agendamento de <strong>%s</strong> para o pet <strong>%s</strong> foi registrado para %s às %s.</p>",
			created.ClientName,
			created.ServiceName,
			created.PetName,
			created.Date.Format("02/01/2006"),
			created.StartTime.Format("15:04"),
		)
		mailer.Dispatch(c.mailer, c.logger, created.ClientEmail, "Agendamento confirmado", body)
	}

	ctx.JSON(http.StatusCreated, dto.ToAppointmentResponse(created))
}

// Get retorna um agendamento pelo ID
// @Summary Buscar agendamento
// @Tags agendamentos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do agendamento"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /agendamentos/{id} [get]
func (c *AppointmentController) Get(ctx *gin.Context) {
	a, err := c.appointmentRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Agendamento não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar agendamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar agendamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAppointmentResponse(a))
}

// List lista os agendamentos
// @Summary Listar agendamentos
// @Tags agendamentos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Param cliente_id query string false "Filtrar por cliente"
// @Param pet_id query string false "Filtrar por pet"
// @Param servico_id query string false "Filtrar por serviço"
// @Param funcionario_id query string false "Filtrar por funcionário"
// @Param data query string false "Filtrar por data (YYYY-MM-DD)"
// @Param data_inicio query string false "Data inicial do período"
// @Param data_fim query string false "Data final do período"
// @Param status query string false "Filtrar por status"
// @Success 200 {object} dto.AppointmentListResponse
// @Router /agendamentos [get]
func (c *AppointmentController) List(ctx *gin.Context) {
	p := pagination(ctx)
	filter := appointmentdomain.Filter{
		ClientID:  ctx.Query("cliente_id"),
		PetID:     ctx.Query("pet_id"),
		ServiceID: ctx.Query("servico_id"),
		StaffID:   ctx.Query("funcionario_id"),
		Status:    appointmentdomain.Status(ctx.Query("status")),
	}

	if v := ctx.Query("data"); v != "" {
		d, err := dto.ParseDate(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Data inválida", err.Error()))
			return
		}
		filter.Date = &d
	}
	if v := ctx.Query("data_inicio"); v != "" {
		d, err := dto.ParseDate(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Data inicial inválida", err.Error()))
			return
		}
		filter.DateFrom = &d
	}
	if v := ctx.Query("data_fim"); v != "" {
		d, err := dto.ParseDate(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Data final inválida", err.Error()))
			return
		}
		filter.DateTo = &d
	}

	appointments, err := c.appointmentRepo.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar agendamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar agendamentos", err.Error()))
		return
	}

	total, err := c.appointmentRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("Erro ao contar agendamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar agendamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAppointmentListResponse(appointments, total, p))
}

// Update atualiza um agendamento
// @Summary Atualizar agendamento
// @Tags agendamentos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do agendamento"
// @Param agendamento body dto.AppointmentRequest true "Dados do agendamento"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /agendamentos/{id} [put]
func (c *AppointmentController) Update(ctx *gin.Context) {
	var req dto.AppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	a, err := c.appointmentRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Agendamento não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar agendamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar agendamento", err.Error()))
		return
	}

	if !c.validateReferences(ctx, req.ClientID, req.PetID, req.ServiceID, req.StaffID) {
		return
	}

	date, startAt, endAt, err := parseSchedule(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	prevStatus := a.Status
	a.ClientID = req.ClientID
	a.PetID = req.PetID
	a.ServiceID = req.ServiceID
	a.StaffID = req.StaffID
	a.Date = date
	a.StartTime = startAt
	a.EndTime = endAt
	if req.Status != "" {
		a.Status = req.Status
	}
	a.Notes = req.Notes
	a.UpdatedAt = time.Now()

	if !a.Range().Valid() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao atualizar agendamento", appointmentdomain.ErrInvalidRange.Error()))
		return
	}

	if err := c.appointmentRepo.Update(ctx, a); err != nil {
		if errors.Is(err, appointmentdomain.ErrConflict) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "O funcionário já possui um agendamento neste horário", ""))
			return
		}
		if errors.Is(err, repository.ErrStaffNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Funcionário não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao atualizar agendamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar agendamento", err.Error()))
		return
	}

	updated, err := c.appointmentRepo.FindByID(ctx, a.ID)
	if err != nil {
		c.logger.Error("Erro ao recarregar agendamento", "error", err)
		ctx.JSON(http.StatusOK, dto.ToAppointmentResponse(a))
		return
	}

	if updated.Status != prevStatus {
		c.notifyStatus(updated)
	}

	ctx.JSON(http.StatusOK, dto.ToAppointmentResponse(updated))
}

// Delete remove um agendamento
// @Summary Excluir agendamento
// @Tags agendamentos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do agendamento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /agendamentos/{id} [delete]
func (c *AppointmentController) Delete(ctx *gin.Context) {
	a, err := c.appointmentRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Agendamento não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar agendamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir agendamento", err.Error()))
		return
	}

	if err := c.appointmentRepo.Delete(ctx, a.ID); err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Agendamento não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao excluir agendamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir agendamento", err.Error()))
		return
	}

	// Excluir um agendamento ainda ativo equivale a cancelá-lo para o cliente
	if a.IsActive() && a.ClientEmail != "" {
		mailer.Dispatch(c.mailer, c.logger, a.ClientEmail, "Agendamento cancelado", appointmentNoticeBody(a, "foi cancelado"))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Agendamento excluído com sucesso", nil))
}
