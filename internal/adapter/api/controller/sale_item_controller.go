package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/dto"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/repository"
	saledomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/sale"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/logger"
)

// SaleItemController gerencia as requisições de itens de venda avulsos
type SaleItemController struct {
	saleRepo saledomain.Repository
	logger   logger.Logger
}

// NewSaleItemController cria uma nova instância de SaleItemController
func NewSaleItemController(saleRepo saledomain.Repository, logger logger.Logger) *SaleItemController {
	return &SaleItemController{
		saleRepo: saleRepo,
		logger:   logger,
	}
}

// respondItemError traduz o erro das mutações de item para a resposta HTTP
func (c *SaleItemController) respondItemError(ctx *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, repository.ErrSaleNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Venda não encontrada", ""))
	case errors.Is(err, repository.ErrSaleItemNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Item de venda não encontrado", ""))
	case errors.Is(err, saledomain.ErrItemSaleCancelled):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, action, err.Error()))
	case errors.Is(err, saledomain.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
	case errors.Is(err, saledomain.ErrInactiveProduct):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Produto inativo", err.Error()))
	case errors.Is(err, saledomain.ErrInsufficientStock):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Estoque insuficiente", err.Error()))
	case errors.Is(err, saledomain.ErrInvalidQuantity), errors.Is(err, saledomain.ErrNegativeDiscount):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, action, err.Error()))
	default:
		c.logger.Error(action, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, action, err.Error()))
	}
}

// Create adiciona um item a uma venda existente
// @Summary Criar item de venda
// @Description Adiciona o item baixando o estoque e atualizando o total da venda
// @Tags itens-venda
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param item body dto.SaleItemRequest true "Dados do item"
// @Success 201 {object} dto.SaleItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /itens-venda [post]
func (c *SaleItemController) Create(ctx *gin.Context) {
	var req dto.SaleItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	item, err := c.saleRepo.AddItem(ctx, req.SaleID, saledomain.NewItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Discount:  req.Discount,
	})
	if err != nil {
		c.respondItemError(ctx, "Erro ao criar item de venda", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleItemResponse(item))
}

// Get retorna um item de venda pelo ID
// @Summary Buscar item de venda
// @Tags itens-venda
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do item"
// @Success 200 {object} dto.SaleItemResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /itens-venda/{id} [get]
func (c *SaleItemController) Get(ctx *gin.Context) {
	item, err := c.saleRepo.FindItemByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSaleItemNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Item de venda não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar item de venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar item de venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleItemResponse(item))
}

// List lista os itens de venda
// @Summary Listar itens de venda
// @Tags itens-venda
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Param venda_id query string false "Filtrar por venda"
// @Param produto_id query string false "Filtrar por produto"
// @Success 200 {object} dto.SaleItemListResponse
// @Router /itens-venda [get]
func (c *SaleItemController) List(ctx *gin.Context) {
	p := pagination(ctx)
	filter := saledomain.ItemFilter{
		SaleID:    ctx.Query("venda_id"),
		ProductID: ctx.Query("produto_id"),
	}

	items, err := c.saleRepo.ListItems(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar itens de venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar itens de venda", err.Error()))
		return
	}

	total, err := c.saleRepo.CountItems(ctx, filter)
	if err != nil {
		c.logger.Error("Erro ao contar itens de venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar itens de venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleItemListResponse(items, total, p))
}

// Update altera a quantidade ou os valores de um item de venda
// @Summary Atualizar item de venda
// @Description Ajusta o estoque pelo delta de quantidade e o total da venda pela diferença
// @Tags itens-venda
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do item"
// @Param item body dto.SaleItemUpdateRequest true "Dados do item"
// @Success 200 {object} dto.SaleItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /itens-venda/{id} [put]
func (c *SaleItemController) Update(ctx *gin.Context) {
	var req dto.SaleItemUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	item, err := c.saleRepo.UpdateItem(ctx, ctx.Param("id"), saledomain.ItemUpdate{
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Discount:  req.Discount,
	})
	if err != nil {
		c.respondItemError(ctx, "Erro ao atualizar item de venda", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleItemResponse(item))
}

// Delete remove um item de venda devolvendo a quantidade ao estoque
// @Summary Excluir item de venda
// @Tags itens-venda
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do item"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /itens-venda/{id} [delete]
func (c *SaleItemController) Delete(ctx *gin.Context) {
	if err := c.saleRepo.DeleteItem(ctx, ctx.Param("id")); err != nil {
		c.respondItemError(ctx, "Erro ao excluir item de venda", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Item de venda excluído com sucesso", nil))
}
