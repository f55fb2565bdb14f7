package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/dto"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/repository"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/category"
	productdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/product"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/logger"
)

// ProductCategoryController gerencia as requisições de categorias de produto
type ProductCategoryController struct {
	categoryRepo category.ProductCategoryRepository
	productRepo  productdomain.Repository
	logger       logger.Logger
}

// NewProductCategoryController cria uma nova instância de ProductCategoryController
func NewProductCategoryController(categoryRepo category.ProductCategoryRepository, productRepo productdomain.Repository, logger logger.Logger) *ProductCategoryController {
	return &ProductCategoryController{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// Create cria uma nova categoria de produto
// @Summary Criar categoria de produto
// @Tags categorias-produto
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param categoria body dto.CategoryRequest true "Dados da categoria"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /categorias-produto [post]
func (c *ProductCategoryController) Create(ctx *gin.Context) {
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

	cat, err := category.NewProductCategory(req.Name, req.Description)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar categoria", err.Error()))
		return
	}

	if err := c.categoryRepo.Create(ctx, cat); err != nil {
		if errors.Is(err, repository.ErrCategoryDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Já existe uma categoria com este nome", ""))
			return
		}
		c.logger.Error("Erro ao criar categoria de produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao salvar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductCategoryResponse(cat))
}

// Get retorna uma categoria de produto pelo ID
// @Summary Buscar categoria de produto
// @Tags categorias-produto
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categorias-produto/{id} [get]
func (c *ProductCategoryController) Get(ctx *gin.Context) {
	cat, err := c.categoryRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Categoria não encontrada", ""))
			return
		}
		c.logger.Error("Erro ao buscar categoria de produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductCategoryResponse(cat))
}

// List lista as categorias de produto
// @Summary Listar categorias de produto
// @Tags categorias-produto
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Param nome query string false "Filtrar por nome"
// @Success 200 {object} dto.CategoryListResponse
// @Router /categorias-produto [get]
func (c *ProductCategoryController) List(ctx *gin.Context) {
	p := pagination(ctx)
	name := ctx.Query("nome")

	list, err := c.categoryRepo.List(ctx, name, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar categorias de produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar categorias", err.Error()))
		return
	}

	total, err := c.categoryRepo.Count(ctx, name)
	if err != nil {
		c.logger.Error("Erro ao contar categorias de produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductCategoryListResponse(list, total, p))
}

// Update atualiza uma categoria de produto
// @Summary Atualizar categoria de produto
// @Tags categorias-produto
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Param categoria body dto.CategoryRequest true "Dados da categoria"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /categorias-produto/{id} [put]
func (c *ProductCategoryController) Update(ctx *gin.Context) {
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
		c.logger.Error("Erro ao buscar categoria de produto", "error", err)
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
		c.logger.Error("Erro ao atualizar categoria de produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductCategoryResponse(cat))
}

// Delete remove uma categoria de produto sem produtos associados
// @Summary Excluir categoria de produto
// @Tags categorias-produto
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /categorias-produto/{id} [delete]
func (c *ProductCategoryController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	count, err := c.categoryRepo.CountProducts(ctx, id)
	if err != nil {
		c.logger.Error("Erro ao contar produtos da categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir categoria", err.Error()))
		return
	}
	if count > 0 {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Categoria possui produtos associados", ""))
		return
	}

	if err := c.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Categoria não encontrada", ""))
			return
		}
		if errors.Is(err, repository.ErrCategoryInUse) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Categoria possui produtos associados", ""))
			return
		}
		c.logger.Error("Erro ao excluir categoria de produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Categoria excluída com sucesso", nil))
}

// GetProducts lista os produtos da categoria
// @Summary Produtos da categoria
// @Tags categorias-produto
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.ProductListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categorias-produto/{id}/produtos [get]
func (c *ProductCategoryController) GetProducts(ctx *gin.Context) {
	id := ctx.Param("id")

	if _, err := c.categoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Categoria não encontrada", ""))
			return
		}
		c.logger.Error("Erro ao buscar categoria de produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produtos", err.Error()))
		return
	}

	p := pagination(ctx)
	filter := productdomain.Filter{CategoryID: id}

	products, err := c.productRepo.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar produtos da categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produtos", err.Error()))
		return
	}

	total, err := c.productRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("Erro ao contar produtos da categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, p))
}
