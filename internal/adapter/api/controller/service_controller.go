package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/dto"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/repository"
	appointmentdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/appointment"
	servicedomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/service"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/logger"
)

// ServiceController gerencia as requisições relacionadas a serviços
type ServiceController struct {
	serviceRepo     servicedomain.Repository
	appointmentRepo appointmentdomain.Repository
	logger          logger.Logger
}

// NewServiceController cria uma nova instância de ServiceController
func NewServiceController(serviceRepo servicedomain.Repository, appointmentRepo appointmentdomain.Repository, logger logger.Logger) *ServiceController {
	return &ServiceController{
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Create cria um novo serviço
// @Summary Criar serviço
// @Tags servicos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param servico body dto.ServiceRequest true "Dados do serviço"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /servicos [post]
func (c *ServiceController) Create(ctx *gin.Context) {
	var req dto.ServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	s, err := servicedomain.NewService(req.Name, req.Price, req.Duration)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar serviço", err.Error()))
		return
	}
	s.Description = req.Description
	s.CategoryID = req.CategoryID
	if req.Status != "" {
		s.Status = req.Status
	}

	if err := c.serviceRepo.Create(ctx, s); err != nil {
		c.logger.Error("Erro ao criar serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao salvar serviço", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToServiceResponse(s))
}

// Get retorna um serviço pelo ID
// @Summary Buscar serviço
// @Tags servicos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do serviço"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /servicos/{id} [get]
func (c *ServiceController) Get(ctx *gin.Context) {
	s, err := c.serviceRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Serviço não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar serviço", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceResponse(s))
}

// List lista os serviços
// @Summary Listar serviços
// @Tags servicos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Param nome query string false "Filtrar por nome"
// @Param categoria_id query string false "Filtrar por categoria"
// @Param status query string false "Filtrar por status"
// @Success 200 {object} dto.ServiceListResponse
// @Router /servicos [get]
func (c *ServiceController) List(ctx *gin.Context) {
	p := pagination(ctx)
	filter := servicedomain.Filter{
		Name:       ctx.Query("nome"),
		CategoryID: ctx.Query("categoria_id"),
		Status:     servicedomain.Status(ctx.Query("status")),
	}

	services, err := c.serviceRepo.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar serviços", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar serviços", err.Error()))
		return
	}

	total, err := c.serviceRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("Erro ao contar serviços", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar serviços", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceListResponse(services, total, p))
}

// Update atualiza um serviço
// @Summary Atualizar serviço
// @Tags servicos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do serviço"
// @Param servico body dto.ServiceRequest true "Dados do serviço"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /servicos/{id} [put]
func (c *ServiceController) Update(ctx *gin.Context) {
	var req dto.ServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	s, err := c.serviceRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Serviço não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar serviço", err.Error()))
		return
	}

	if req.Price.IsNegative() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao atualizar serviço", servicedomain.ErrInvalidPrice.Error()))
		return
	}

	s.Name = req.Name
	s.Description = req.Description
	s.Price = req.Price
	s.Duration = req.Duration
	s.CategoryID = req.CategoryID
	if req.Status != "" {
		s.Status = req.Status
	}
	s.UpdatedAt = time.Now()

	if err := c.serviceRepo.Update(ctx, s); err != nil {
		c.logger.Error("Erro ao atualizar serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar serviço", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceResponse(s))
}

// Delete remove um serviço sem agendamentos associados
// @Summary Excluir serviço
// @Tags servicos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do serviço"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /servicos/{id} [delete]
func (c *ServiceController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	count, err := c.serviceRepo.CountAppointments(ctx, id)
	if err != nil {
		c.logger.Error("Erro ao contar agendamentos do serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir serviço", err.Error()))
		return
	}
	if count > 0 {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Serviço possui agendamentos associados", ""))
		return
	}

	if err := c.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Serviço não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao excluir serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir serviço", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Serviço excluído com sucesso", nil))
}

// GetAppointments lista os agendamentos do serviço
// @Summary Agendamentos do serviço
// @Tags servicos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do serviço"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.AppointmentListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /servicos/{id}/agendamentos [get]
func (c *ServiceController) GetAppointments(ctx *gin.Context) {
	id := ctx.Param("id")

	if _, err := c.serviceRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Serviço não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar agendamentos", err.Error()))
		return
	}

	p := pagination(ctx)
	filter := appointmentdomain.Filter{ServiceID: id}

	appointments, err := c.appointmentRepo.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar agendamentos do serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar agendamentos", err.Error()))
		return
	}

	total, err := c.appointmentRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("Erro ao contar agendamentos do serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar agendamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAppointmentListResponse(appointments, total, p))
}
