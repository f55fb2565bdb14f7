package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/dto"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/repository"
	staffdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/staff"
	taskdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/task"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/logger"
)

// TaskController gerencia as requisições relacionadas a tarefas
type TaskController struct {
	taskRepo  taskdomain.Repository
	staffRepo staffdomain.Repository
	logger    logger.Logger
}

// NewTaskController cria uma nova instância de TaskController
func NewTaskController(taskRepo taskdomain.Repository, staffRepo staffdomain.Repository, logger logger.Logger) *TaskController {
	return &TaskController{
		taskRepo:  taskRepo,
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// Create cria uma nova tarefa
// @Summary Criar tarefa
// @Tags tarefas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param tarefa body dto.TaskRequest true "Dados da tarefa"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tarefas [post]
func (c *TaskController) Create(ctx *gin.Context) {
	var req dto.TaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	exists, err := c.staffRepo.Exists(ctx, req.StaffID)
	if err != nil {
		c.logger.Error("Erro ao verificar funcionário da tarefa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar tarefa", err.Error()))
		return
	}
	if !exists {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Funcionário não encontrado", ""))
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Data inválida", err.Error()))
		return
	}

	var hour time.Time
	if req.Time != "" {
		hour, err = dto.ParseTimeOfDay(req.Time)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Hora inválida", err.Error()))
			return
		}
	}

	t, err := taskdomain.NewTask(req.StaffID, req.Title, req.Description, date, hour, req.Priority)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar tarefa", err.Error()))
		return
	}
	if req.Status != "" {
		t.Status = req.Status
	}

	if err := c.taskRepo.Create(ctx, t); err != nil {
		c.logger.Error("Erro ao criar tarefa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao salvar tarefa", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTaskResponse(t))
}

// Get retorna uma tarefa pelo ID
// @Summary Buscar tarefa
// @Tags tarefas
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da tarefa"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tarefas/{id} [get]
func (c *TaskController) Get(ctx *gin.Context) {
	t, err := c.taskRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Tarefa não encontrada", ""))
			return
		}
		c.logger.Error("Erro ao buscar tarefa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar tarefa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskResponse(t))
}

// List lista as tarefas
// @Summary Listar tarefas
// @Tags tarefas
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Param funcionario_id query string false "Filtrar por funcionário"
// @Param titulo query string false "Filtrar por título"
// @Param data query string false "Filtrar por data (YYYY-MM-DD)"
// @Param data_inicio query string false "Data inicial do período"
// @Param data_fim query string false "Data final do período"
// @Param prioridade query string false "Filtrar por prioridade"
// @Param status query string false "Filtrar por status"
// @Success 200 {object} dto.TaskListResponse
// @Router /tarefas [get]
func (c *TaskController) List(ctx *gin.Context) {
	p := pagination(ctx)
	filter := taskdomain.Filter{
		StaffID:  ctx.Query("funcionario_id"),
		Title:    ctx.Query("titulo"),
		Priority: taskdomain.Priority(ctx.Query("prioridade")),
		Status:   taskdomain.Status(ctx.Query("status")),
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

	tasks, err := c.taskRepo.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar tarefas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar tarefas", err.Error()))
		return
	}

	total, err := c.taskRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("Erro ao contar tarefas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar tarefas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, total, p))
}

// Update atualiza uma tarefa
// @Summary Atualizar tarefa
// @Tags tarefas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da tarefa"
// @Param tarefa body dto.TaskRequest true "Dados da tarefa"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tarefas/{id} [put]
func (c *TaskController) Update(ctx *gin.Context) {
	var req dto.TaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	t, err := c.taskRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Tarefa não encontrada", ""))
			return
		}
		c.logger.Error("Erro ao buscar tarefa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar tarefa", err.Error()))
		return
	}

	if req.StaffID != t.StaffID {
		exists, err := c.staffRepo.Exists(ctx, req.StaffID)
		if err != nil {
			c.logger.Error("Erro ao verificar funcionário da tarefa", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar tarefa", err.Error()))
			return
		}
		if !exists {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Funcionário não encontrado", ""))
			return
		}
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Data inválida", err.Error()))
		return
	}

	t.StaffID = req.StaffID
	t.Title = req.Title
	t.Description = req.Description
	t.Date = date
	if req.Time != "" {
		hour, err := dto.ParseTimeOfDay(req.Time)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Hora inválida", err.Error()))
			return
		}
		t.Time = hour
	}
	if req.Priority != "" {
		t.Priority = req.Priority
	}
	if req.Status != "" {
		t.Status = req.Status
	}
	t.UpdatedAt = time.Now()

	if err := c.taskRepo.Update(ctx, t); err != nil {
		c.logger.Error("Erro ao atualizar tarefa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar tarefa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskResponse(t))
}

// Delete remove uma tarefa
// @Summary Excluir tarefa
// @Tags tarefas
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da tarefa"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tarefas/{id} [delete]
func (c *TaskController) Delete(ctx *gin.Context) {
	if err := c.taskRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Tarefa não encontrada", ""))
			return
		}
		c.logger.Error("Erro ao excluir tarefa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir tarefa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Tarefa excluída com sucesso", nil))
}
