package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/dto"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/repository"
	appointmentdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/appointment"
	staffdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/staff"
	taskdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/task"
	userdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/logger"
)

// StaffController gerencia as requisições relacionadas a funcionários
type StaffController struct {
	staffRepo       staffdomain.Repository
	userRepo        userdomain.Repository
	appointmentRepo appointmentdomain.Repository
	taskRepo        taskdomain.Repository
	logger          logger.Logger
}

// NewStaffController cria uma nova instância de StaffController
func NewStaffController(staffRepo staffdomain.Repository, userRepo userdomain.Repository, appointmentRepo appointmentdomain.Repository, taskRepo taskdomain.Repository, logger logger.Logger) *StaffController {
	return &StaffController{
		staffRepo:       staffRepo,
		userRepo:        userRepo,
		appointmentRepo: appointmentRepo,
		taskRepo:        taskRepo,
		logger:          logger,
	}
}

// Create cria um novo funcionário
// @Summary Criar funcionário
// @Description Cria um funcionário vinculado a um usuário existente
// @Tags funcionarios
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param funcionario body dto.StaffRequest true "Dados do funcionário"
// @Success 201 {object} dto.StaffResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /funcionarios [post]
func (c *StaffController) Create(ctx *gin.Context) {
	var req dto.StaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if _, err := c.userRepo.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuário não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar usuário do funcionário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar funcionário", err.Error()))
		return
	}

	s, err := staffdomain.NewStaff(req.UserID, req.Position)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar funcionário", err.Error()))
		return
	}
	s.Salary = req.Salary
	s.Document = req.Document
	s.Specialty = req.Specialty

	if req.HiredAt != "" {
		hiredAt, err := dto.ParseDate(req.HiredAt)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Data de contratação inválida", err.Error()))
			return
		}
		s.HiredAt = &hiredAt
	}

	if err := c.staffRepo.Create(ctx, s); err != nil {
		if errors.Is(err, repository.ErrStaffDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Usuário já vinculado a um funcionário", ""))
			return
		}
		c.logger.Error("Erro ao criar funcionário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao salvar funcionário", err.Error()))
		return
	}

	created, err := c.staffRepo.FindByID(ctx, s.ID)
	if err != nil {
		c.logger.Error("Erro ao recarregar funcionário", "error", err)
		ctx.JSON(http.StatusCreated, dto.ToStaffResponse(s))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToStaffResponse(created))
}

// Get retorna um funcionário pelo ID
// @Summary Buscar funcionário
// @Tags funcionarios
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do funcionário"
// @Success 200 {object} dto.StaffResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /funcionarios/{id} [get]
func (c *StaffController) Get(ctx *gin.Context) {
	s, err := c.staffRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Funcionário não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar funcionário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar funcionário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStaffResponse(s))
}

// List lista os funcionários
// @Summary Listar funcionários
// @Tags funcionarios
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Param nome query string false "Filtrar por nome"
// @Param cargo query string false "Filtrar por cargo"
// @Param especialidade query string false "Filtrar por especialidade"
// @Success 200 {object} dto.StaffListResponse
// @Router /funcionarios [get]
func (c *StaffController) List(ctx *gin.Context) {
	p := pagination(ctx)
	filter := staffdomain.Filter{
		Name:      ctx.Query("nome"),
		Position:  ctx.Query("cargo"),
		Specialty: ctx.Query("especialidade"),
	}

	list, err := c.staffRepo.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar funcionários", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar funcionários", err.Error()))
		return
	}

	total, err := c.staffRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("Erro ao contar funcionários", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar funcionários", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStaffListResponse(list, total, p))
}

// Update atualiza um funcionário
// @Summary Atualizar funcionário
// @Tags funcionarios
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do funcionário"
// @Param funcionario body dto.StaffUpdateRequest true "Dados do funcionário"
// @Success 200 {object} dto.StaffResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /funcionarios/{id} [put]
func (c *StaffController) Update(ctx *gin.Context) {
	var req dto.StaffUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	s, err := c.staffRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Funcionário não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar funcionário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar funcionário", err.Error()))
		return
	}

	if req.Position != "" {
		s.Position = req.Position
	}
	if req.Salary != nil {
		s.Salary = *req.Salary
	}
	if req.HiredAt != "" {
		hiredAt, err := dto.ParseDate(req.HiredAt)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Data de contratação inválida", err.Error()))
			return
		}
		s.HiredAt = &hiredAt
	}
	if req.Document != "" {
		s.Document = req.Document
	}
	if req.Specialty != "" {
		s.Specialty = req.Specialty
	}
	s.UpdatedAt = time.Now()

	if err := c.staffRepo.Update(ctx, s); err != nil {
		c.logger.Error("Erro ao atualizar funcionário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar funcionário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStaffResponse(s))
}

// Delete remove um funcionário
// @Summary Excluir funcionário
// @Tags funcionarios
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do funcionário"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /funcionarios/{id} [delete]
func (c *StaffController) Delete(ctx *gin.Context) {
	if err := c.staffRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Funcionário não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao excluir funcionário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir funcionário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Funcionário excluído com sucesso", nil))
}

// GetAppointments lista os agendamentos do funcionário
// @Summary Agendamentos do funcionário
// @Tags funcionarios
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do funcionário"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.AppointmentListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /funcionarios/{id}/agendamentos [get]
func (c *StaffController) GetAppointments(ctx *gin.Context) {
	id := ctx.Param("id")

	exists, err := c.staffRepo.Exists(ctx, id)
	if err != nil {
		c.logger.Error("Erro ao verificar funcionário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar agendamentos", err.Error()))
		return
	}
	if !exists {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Funcionário não encontrado", ""))
		return
	}

	p := pagination(ctx)
	filter := appointmentdomain.Filter{StaffID: id}

	appointments, err := c.appointmentRepo.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar agendamentos do funcionário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar agendamentos", err.Error()))
		return
	}

	total, err := c.appointmentRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("Erro ao contar agendamentos do funcionário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar agendamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAppointmentListResponse(appointments, total, p))
}

// GetTasks lista as tarefas do funcionário
// @Summary Tarefas do funcionário
// @Tags funcionarios
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do funcionário"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.TaskListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /funcionarios/{id}/tarefas [get]
func (c *StaffController) GetTasks(ctx *gin.Context) {
	id := ctx.Param("id")

	exists, err := c.staffRepo.Exists(ctx, id)
	if err != nil {
		c.logger.Error("Erro ao verificar funcionário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar tarefas", err.Error()))
		return
	}
	if !exists {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Funcionário não encontrado", ""))
		return
	}

	p := pagination(ctx)
	filter := taskdomain.Filter{StaffID: id}

	tasks, err := c.taskRepo.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar tarefas do funcionário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar tarefas", err.Error()))
		return
	}

	total, err := c.taskRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("Erro ao contar tarefas do funcionário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar tarefas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, total, p))
}
