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
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/logger"
)

// PetController gerencia as requisições relacionadas a pets
type PetController struct {
	petRepo         petdomain.Repository
	clientRepo      clientdomain.Repository
	appointmentRepo appointmentdomain.Repository
	logger          logger.Logger
}

// NewPetController cria uma nova instância de PetController
func NewPetController(petRepo petdomain.Repository, clientRepo clientdomain.Repository, appointmentRepo appointmentdomain.Repository, logger logger.Logger) *PetController {
	return &PetController{
		petRepo:         petRepo,
		clientRepo:      clientRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Create cria um novo pet
// @Summary Criar pet
// @Description Cria um pet vinculado a um cliente existente
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param pet body dto.PetRequest true "Dados do pet"
// @Success 201 {object} dto.PetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pets [post]
func (c *PetController) Create(ctx *gin.Context) {
	var req dto.PetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	exists, err := c.clientRepo.Exists(ctx, req.ClientID)
	if err != nil {
		c.logger.Error("Erro ao verificar cliente do pet", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar pet", err.Error()))
		return
	}
	if !exists {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
		return
	}

	p, err := petdomain.NewPet(req.ClientID, req.Name, req.Species)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar pet", err.Error()))
		return
	}
	p.Breed = req.Breed
	p.Weight = req.Weight
	p.Sex = req.Sex
	p.Color = req.Color
	p.Notes = req.Notes

	if req.BirthDate != "" {
		birthDate, err := dto.ParseDate(req.BirthDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Data de nascimento inválida", err.Error()))
			return
		}
		p.BirthDate = &birthDate
	}

	if err := c.petRepo.Create(ctx, p); err != nil {
		c.logger.Error("Erro ao criar pet", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao salvar pet", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPetResponse(p))
}

// Get retorna um pet pelo ID
// @Summary Buscar pet
// @Tags pets
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pet"
// @Success 200 {object} dto.PetResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pets/{id} [get]
func (c *PetController) Get(ctx *gin.Context) {
	p, err := c.petRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Pet não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar pet", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar pet", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPetResponse(p))
}

// List lista os pets
// @Summary Listar pets
// @Tags pets
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Param nome query string false "Filtrar por nome"
// @Param especie query string false "Filtrar por espécie"
// @Param raca query string false "Filtrar por raça"
// @Param cliente_id query string false "Filtrar por cliente"
// @Success 200 {object} dto.PetListResponse
// @Router /pets [get]
func (c *PetController) List(ctx *gin.Context) {
	p := pagination(ctx)
	filter := petdomain.Filter{
		Name:     ctx.Query("nome"),
		Species:  ctx.Query("especie"),
		Breed:    ctx.Query("raca"),
		ClientID: ctx.Query("cliente_id"),
	}

	pets, err := c.petRepo.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar pets", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar pets", err.Error()))
		return
	}

	total, err := c.petRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("Erro ao contar pets", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar pets", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPetListResponse(pets, total, p))
}

// Update atualiza um pet
// @Summary Atualizar pet
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pet"
// @Param pet body dto.PetUpdateRequest true "Dados do pet"
// @Success 200 {object} dto.PetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pets/{id} [put]
func (c *PetController) Update(ctx *gin.Context) {
	var req dto.PetUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	p, err := c.petRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Pet não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar pet", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar pet", err.Error()))
		return
	}

	if req.Name != "" {
		p.Name = req.Name
	}
	if req.Species != "" {
		p.Species = req.Species
	}
	if req.Breed != "" {
		p.Breed = req.Breed
	}
	if req.BirthDate != "" {
		birthDate, err := dto.ParseDate(req.BirthDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Data de nascimento inválida", err.Error()))
			return
		}
		p.BirthDate = &birthDate
	}
	if req.Weight != nil {
		p.Weight = *req.Weight
	}
	if req.Sex != "" {
		p.Sex = req.Sex
	}
	if req.Color != "" {
		p.Color = req.Color
	}
	if req.Notes != "" {
		p.Notes = req.Notes
	}
	p.UpdatedAt = time.Now()

	if err := c.petRepo.Update(ctx, p); err != nil {
		c.logger.Error("Erro ao atualizar pet", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar pet", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPetResponse(p))
}

// Delete remove um pet
// @Summary Excluir pet
// @Tags pets
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pet"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pets/{id} [delete]
func (c *PetController) Delete(ctx *gin.Context) {
	if err := c.petRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Pet não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao excluir pet", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir pet", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Pet excluído com sucesso", nil))
}

// GetAppointments lista os agendamentos do pet
// @Summary Agendamentos do pet
// @Tags pets
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pet"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.AppointmentListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pets/{id}/agendamentos [get]
func (c *PetController) GetAppointments(ctx *gin.Context) {
	id := ctx.Param("id")

	if _, err := c.petRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Pet não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar pet", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar agendamentos", err.Error()))
		return
	}

	p := pagination(ctx)
	filter := appointmentdomain.Filter{PetID: id}

	appointments, err := c.appointmentRepo.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar agendamentos do pet", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar agendamentos", err.Error()))
		return
	}

	total, err := c.appointmentRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("Erro ao contar agendamentos do pet", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar agendamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAppointmentListResponse(appointments, total, p))
}
