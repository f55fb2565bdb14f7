package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/dto"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/repository"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/category"
	servicedomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/service"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/logger"
)

// ServiceCategoryController gerencia as requisições de categorias de serviço
type ServiceCategoryController struct {
	categoryRepo category.ServiceCategoryRepository
	serviceRepo  servicedomain.Repository
	logger       logger.Logger
}

// NewServiceCategoryController cria uma nova instância de ServiceCategoryController
func NewServiceCategoryController(categoryRepo category.ServiceCategoryRepository, serviceRepo servicedomain.Repository, logger logger.Logger) *ServiceCategoryController {
	return &ServiceCategoryController{
		categoryRepo: categoryRepo,
		serviceRepo:  serviceRepo,
		logger:       logger,
	}
}

// Create cria uma nova categoria de serviço
// @Summary Criar categoria de serviço
// @Tags categorias-servico
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param categoria body dto.CategoryRequest true "Dados da categoria"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /categorias-servico [post]
func (c *ServiceCategoryController) Create(ctx *gin.Context) {
	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	exists, err := c.categoryRepo.ExistsByName(ctx, req.Name, "")
	if err != nil {
		c.logger.Error("Erro ao verificar nome da categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar categoria", err.Error()))
		return
	}
	if exists {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Já existe uma categoria com este nome", ""))
		return
	}

	cat, err := category.NewServiceCategory(req.Name, req.Description)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar categoria", err.Error()))
		return
	}

	if err := c.categoryRepo.Create(ctx, cat); err != nil {
		if errors.Is(err, repository.ErrCategoryDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Já existe uma categoria com este nome", ""))
			return
		}
		c.logger.Error("Erro ao criar categoria de serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao salvar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToServiceCategoryResponse(cat))
}

// Get retorna uma categoria de serviço pelo ID
// @Summary Buscar categoria de serviço
// @Tags categorias-servico
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categorias-servico/{id} [get]
func (c *ServiceCategoryController) Get(ctx *gin.Context) {
	cat, err := c.categoryRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Categoria não encontrada", ""))
			return
		}
		c.logger.Error("Erro ao buscar categoria de serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceCategoryResponse(cat))
}

// List lista as categorias de serviço
// @Summary Listar categorias de serviço
// @Tags categorias-servico
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Param nome query string false "Filtrar por nome"
// @Success 200 {object} dto.CategoryListResponse
// @Router /categorias-servico [get]
func (c *ServiceCategoryController) List(ctx *gin.Context) {
	p := pagination(ctx)
	name := ctx.Query("nome")

	list, err := c.categoryRepo.List(ctx, name, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar categorias de serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar categorias", err.Error()))
		return
	}

	total, err := c.categoryRepo.Count(ctx, name)
	if err != nil {
		c.logger.Error("Erro ao contar categorias de serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceCategoryListResponse(list, total, p))
}

// Update atualiza uma categoria de serviço
// @Summary Atualizar categoria de serviço
// @Tags categorias-servico
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Param categoria body dto.CategoryRequest true "Dados da categoria"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /categorias-servico/{id} [put]
func (c *ServiceCategoryController) Update(ctx *gin.Context) {
	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	id := ctx.Param("id")
	cat, err := c.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Categoria não encontrada", ""))
			return
		}
		c.logger.Error("Erro ao buscar categoria de serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar categoria", err.Error()))
		return
	}

	exists, err := c.categoryRepo.ExistsByName(ctx, req.Name, id)
	if err != nil {
		c.logger.Error("Erro ao verificar nome da categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar categoria", err.Error()))
		return
	}
	if exists {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Já existe uma categoria com este nome", ""))
		return
	}

	cat.Name = req.Name
	cat.Description = req.Description
	cat.UpdatedAt = time.Now()

	if err := c.categoryRepo.Update(ctx, cat); err != nil {
		c.logger.Error("Erro ao atualizar categoria de serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceCategoryResponse(cat))
}

// Delete remove uma categoria de serviço sem serviços associados
// @Summary Excluir categoria de serviço
// @Tags categorias-servico
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /categorias-servico/{id} [delete]
func (c *ServiceCategoryController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	count, err := c.categoryRepo.CountServices(ctx, id)
	if err != nil {
		c.logger.Error("Erro ao contar serviços da categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir categoria", err.Error()))
		return
	}
	if count > 0 {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Categoria possui serviços associados", ""))
		return
	}

	if err := c.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Categoria não encontrada", ""))
			return
		}
		if errors.Is(err, repository.ErrCategoryInUse) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Categoria possui serviços associados", ""))
			return
		}
		c.logger.Error("Erro ao excluir categoria de serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Categoria excluída com sucesso", nil))
}

// GetServices lista os serviços da categoria
// @Summary Serviços da categoria
// @Tags categorias-servico
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.ServiceListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categorias-servico/{id}/servicos [get]
func (c *ServiceCategoryController) GetServices(ctx *gin.Context) {
	id := ctx.Param("id")

	if _, err := c.categoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Categoria não encontrada", ""))
			return
		}
		c.logger.Error("Erro ao buscar categoria de serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar serviços", err.Error()))
		return
	}

	p := pagination(ctx)
	filter := servicedomain.Filter{CategoryID: id}

	services, err := c.serviceRepo.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar serviços da categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar serviços", err.Error()))
		return
	}

	total, err := c.serviceRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("Erro ao contar serviços da categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar serviços", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceListResponse(services, total, p))
}
