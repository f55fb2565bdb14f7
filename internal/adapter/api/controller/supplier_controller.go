package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/dto"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/repository"
	productdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/product"
	supplierdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/supplier"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/logger"
)

// SupplierController gerencia as requisições relacionadas a fornecedores
type SupplierController struct {
	supplierRepo supplierdomain.Repository
	productRepo  productdomain.Repository
	logger       logger.Logger
}

// NewSupplierController cria uma nova instância de SupplierController
func NewSupplierController(supplierRepo supplierdomain.Repository, productRepo productdomain.Repository, logger logger.Logger) *SupplierController {
	return &SupplierController{
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// Create cria um novo fornecedor
// @Summary Criar fornecedor
// @Tags fornecedores
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param fornecedor body dto.SupplierRequest true "Dados do fornecedor"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /fornecedores [post]
func (c *SupplierController) Create(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	exists, err := c.supplierRepo.ExistsByCNPJ(ctx, req.CNPJ, "")
	if err != nil {
		c.logger.Error("Erro ao verificar CNPJ do fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar fornecedor", err.Error()))
		return
	}
	if exists {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "CNPJ já cadastrado", ""))
		return
	}

	s, err := supplierdomain.NewSupplier(req.Name, req.CNPJ)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar fornecedor", err.Error()))
		return
	}
	s.Phone = req.Phone
	s.Email = req.Email
	s.Address = req.Address
	s.City = req.City
	s.State = req.State
	s.ZipCode = req.ZipCode
	s.ContactName = req.ContactName

	if err := c.supplierRepo.Create(ctx, s); err != nil {
		if errors.Is(err, repository.ErrSupplierDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "CNPJ já cadastrado", ""))
			return
		}
		c.logger.Error("Erro ao criar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao salvar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSupplierResponse(s))
}

// Get retorna um fornecedor pelo ID
// @Summary Buscar fornecedor
// @Tags fornecedores
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /fornecedores/{id} [get]
func (c *SupplierController) Get(ctx *gin.Context) {
	s, err := c.supplierRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fornecedor não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(s))
}

// List lista os fornecedores
// @Summary Listar fornecedores
// @Tags fornecedores
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Param nome query string false "Filtrar por nome"
// @Param cnpj query string false "Filtrar por CNPJ"
// @Param cidade query string false "Filtrar por cidade"
// @Success 200 {object} dto.SupplierListResponse
// @Router /fornecedores [get]
func (c *SupplierController) List(ctx *gin.Context) {
	p := pagination(ctx)
	filter := supplierdomain.Filter{
		Name: ctx.Query("nome"),
		CNPJ: ctx.Query("cnpj"),
		City: ctx.Query("cidade"),
	}

	list, err := c.supplierRepo.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar fornecedores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar fornecedores", err.Error()))
		return
	}

	total, err := c.supplierRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("Erro ao contar fornecedores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar fornecedores", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierListResponse(list, total, p))
}

// Update atualiza um fornecedor
// @Summary Atualizar fornecedor
// @Tags fornecedores
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Param fornecedor body dto.SupplierRequest true "Dados do fornecedor"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /fornecedores/{id} [put]
func (c *SupplierController) Update(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	id := ctx.Param("id")
	s, err := c.supplierRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fornecedor não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar fornecedor", err.Error()))
		return
	}

	exists, err := c.supplierRepo.ExistsByCNPJ(ctx, req.CNPJ, id)
	if err != nil {
		c.logger.Error("Erro ao verificar CNPJ do fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar fornecedor", err.Error()))
		return
	}
	if exists {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "CNPJ já cadastrado", ""))
		return
	}

	s.Name = req.Name
	s.CNPJ = req.CNPJ
	s.Phone = req.Phone
	s.Email = req.Email
	s.Address = req.Address
	s.City = req.City
	s.State = req.State
	s.ZipCode = req.ZipCode
	s.ContactName = req.ContactName
	s.UpdatedAt = time.Now()

	if err := c.supplierRepo.Update(ctx, s); err != nil {
		if errors.Is(err, repository.ErrSupplierDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "CNPJ já cadastrado", ""))
			return
		}
		c.logger.Error("Erro ao atualizar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(s))
}

// Delete remove um fornecedor sem produtos associados
// @Summary Excluir fornecedor
// @Tags fornecedores
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /fornecedores/{id} [delete]
func (c *SupplierController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	count, err := c.supplierRepo.CountProducts(ctx, id)
	if err != nil {
		c.logger.Error("Erro ao contar produtos do fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir fornecedor", err.Error()))
		return
	}
	if count > 0 {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Fornecedor possui produtos associados", ""))
		return
	}

	if err := c.supplierRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fornecedor não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao excluir fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Fornecedor excluído com sucesso", nil))
}

// GetProducts lista os produtos do fornecedor
// @Summary Produtos do fornecedor
// @Tags fornecedores
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.ProductListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /fornecedores/{id}/produtos [get]
func (c *SupplierController) GetProducts(ctx *gin.Context) {
	id := ctx.Param("id")

	exists, err := c.supplierRepo.Exists(ctx, id)
	if err != nil {
		c.logger.Error("Erro ao verificar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produtos", err.Error()))
		return
	}
	if !exists {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fornecedor não encontrado", ""))
		return
	}

	p := pagination(ctx)
	filter := productdomain.Filter{SupplierID: id}

	products, err := c.productRepo.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar produtos do fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produtos", err.Error()))
		return
	}

	total, err := c.productRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("Erro ao contar produtos do fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, p))
}
