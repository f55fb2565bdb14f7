package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/dto"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/repository"
	appointmentdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/appointment"
	clientdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/client"
	petdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/pet"
	saledomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/sale"
	userdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/logger"
)

// ClientController gerencia as requisições relacionadas a clientes
type ClientController struct {
	clientRepo      clientdomain.Repository
	userRepo        userdomain.Repository
	petRepo         petdomain.Repository
	appointmentRepo appointmentdomain.Repository
	saleRepo        saledomain.Repository
	logger          logger.Logger
}

// NewClientController cria uma nova instância de ClientController
func NewClientController(clientRepo clientdomain.Repository, userRepo userdomain.Repository, petRepo petdomain.Repository, appointmentRepo appointmentdomain.Repository, saleRepo saledomain.Repository, logger logger.Logger) *ClientController {
	return &ClientController{
		clientRepo:      clientRepo,
		userRepo:        userRepo,
		petRepo:         petRepo,
		appointmentRepo: appointmentRepo,
		saleRepo:        saleRepo,
		logger:          logger,
	}
}

// parseBirthDate converte a data de nascimento opcional da requisição
func parseBirthDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := dto.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create cria um novo cliente
// @Summary Criar cliente
// @Description Cria um cliente vinculado a um usuário existente
// @Tags clientes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param cliente body dto.ClientRequest true "Dados do cliente"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /clientes [post]
func (c *ClientController) Create(ctx *gin.Context) {
	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if _, err := c.userRepo.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuário não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar usuário do cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar cliente", err.Error()))
		return
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Data de nascimento inválida", err.Error()))
		return
	}

	cl, err := clientdomain.NewClient(req.UserID, req.CPF)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar cliente", err.Error()))
		return
	}
	cl.Address = req.Address
	cl.City = req.City
	cl.State = req.State
	cl.ZipCode = req.ZipCode
	cl.BirthDate = birthDate
	cl.Notes = req.Notes

	if err := c.clientRepo.Create(ctx, cl); err != nil {
		if errors.Is(err, repository.ErrClientDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Usuário ou CPF já vinculado a um cliente", ""))
			return
		}
		c.logger.Error("Erro ao criar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao salvar cliente", err.Error()))
		return
	}

	created, err := c.clientRepo.FindByID(ctx, cl.ID)
	if err != nil {
		c.logger.Error("Erro ao recarregar cliente", "error", err)
		ctx.JSON(http.StatusCreated, dto.ToClientResponse(cl))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClientResponse(created))
}

// Get retorna um cliente pelo ID
// @Summary Buscar cliente
// @Tags clientes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /clientes/{id} [get]
func (c *ClientController) Get(ctx *gin.Context) {
	cl, err := c.clientRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(cl))
}

// List lista os clientes
// @Summary Listar clientes
// @Tags clientes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Param nome query string false "Filtrar por nome"
// @Param cpf query string false "Filtrar por CPF"
// @Param cidade query string false "Filtrar por cidade"
// @Param estado query string false "Filtrar por estado"
// @Success 200 {object} dto.ClientListResponse
// @Router /clientes [get]
func (c *ClientController) List(ctx *gin.Context) {
	p := pagination(ctx)
	filter := clientdomain.Filter{
		Name:  ctx.Query("nome"),
		CPF:   ctx.Query("cpf"),
		City:  ctx.Query("cidade"),
		State: ctx.Query("estado"),
	}

	clients, err := c.clientRepo.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar clientes", err.Error()))
		return
	}

	total, err := c.clientRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("Erro ao contar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientListResponse(clients, total, p))
}

// Update atualiza um cliente
// @Summary Atualizar cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Param cliente body dto.ClientUpdateRequest true "Dados do cliente"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /clientes/{id} [put]
func (c *ClientController) Update(ctx *gin.Context) {
	var req dto.ClientUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	cl, err := c.clientRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}

	if req.BirthDate != "" {
		birthDate, err := parseBirthDate(req.BirthDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Data de nascimento inválida", err.Error()))
			return
		}
		cl.BirthDate = birthDate
	}
	if req.CPF != "" {
		cl.CPF = req.CPF
	}
	if req.Address != "" {
		cl.Address = req.Address
	}
	if req.City != "" {
		cl.City = req.City
	}
	if req.State != "" {
		cl.State = req.State
	}
	if req.ZipCode != "" {
		cl.ZipCode = req.ZipCode
	}
	if req.Notes != "" {
		cl.Notes = req.Notes
	}
	cl.UpdatedAt = time.Now()

	if err := c.clientRepo.Update(ctx, cl); err != nil {
		if errors.Is(err, repository.ErrClientDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "CPF já cadastrado", ""))
			return
		}
		c.logger.Error("Erro ao atualizar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(cl))
}

// Delete remove um cliente
// @Summary Excluir cliente
// @Tags clientes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /clientes/{id} [delete]
func (c *ClientController) Delete(ctx *gin.Context) {
	if err := c.clientRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao excluir cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Cliente excluído com sucesso", nil))
}

// GetPets lista os pets do cliente
// @Summary Pets do cliente
// @Tags clientes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.PetListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /clientes/{id}/pets [get]
func (c *ClientController) GetPets(ctx *gin.Context) {
	id := ctx.Param("id")

	exists, err := c.clientRepo.Exists(ctx, id)
	if err != nil {
		c.logger.Error("Erro ao verificar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar pets", err.Error()))
		return
	}
	if !exists {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
		return
	}

	pets, err := c.petRepo.FindByClient(ctx, id)
	if err != nil {
		c.logger.Error("Erro ao listar pets do cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar pets", err.Error()))
		return
	}

	p := dto.GetPagination(1, len(pets))
	ctx.JSON(http.StatusOK, dto.ToPetListResponse(pets, len(pets), p))
}

// GetAppointments lista os agendamentos do cliente
// @Summary Agendamentos do cliente
// @Tags clientes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.AppointmentListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /clientes/{id}/agendamentos [get]
func (c *ClientController) GetAppointments(ctx *gin.Context) {
	id := ctx.Param("id")

	exists, err := c.clientRepo.Exists(ctx, id)
	if err != nil {
		c.logger.Error("Erro ao verificar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar agendamentos", err.Error()))
		return
	}
	if !exists {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
		return
	}

	p := pagination(ctx)
	filter := appointmentdomain.Filter{ClientID: id}

	appointments, err := c.appointmentRepo.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar agendamentos do cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar agendamentos", err.Error()))
		return
	}

	total, err := c.appointmentRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("Erro ao contar agendamentos do cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar agendamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAppointmentListResponse(appointments, total, p))
}

// GetSales lista as compras do cliente
// @Summary Compras do cliente
// @Tags clientes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.SaleListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /clientes/{id}/compras [get]
func (c *ClientController) GetSales(ctx *gin.Context) {
	id := ctx.Param("id")

	exists, err := c.clientRepo.Exists(ctx, id)
	if err != nil {
		c.logger.Error("Erro ao verificar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar compras", err.Error()))
		return
	}
	if !exists {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
		return
	}

	p := pagination(ctx)
	filter := saledomain.Filter{ClientID: id}

	sales, err := c.saleRepo.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar compras do cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar compras", err.Error()))
		return
	}

	total, err := c.saleRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("Erro ao contar compras do cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar compras", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, total, p))
}
