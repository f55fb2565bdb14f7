package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/dto"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/repository"
	clientdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/client"
	saledomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/sale"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/logger"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/mailer"
)

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	saleRepo   saledomain.Repository
	clientRepo clientdomain.Repository
	mailer     mailer.Mailer
	logger     logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleRepo saledomain.Repository, clientRepo clientdomain.Repository, m mailer.Mailer, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo:   saleRepo,
		clientRepo: clientRepo,
		mailer:     m,
		logger:     logger,
	}
}

// Create registra uma nova venda com seus itens
// @Summary Criar venda
// @Description Registra a venda baixando o estoque de cada item na mesma transação
// @Tags vendas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param venda body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /vendas [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	exists, err := c.clientRepo.Exists(ctx, req.ClientID)
	if err != nil {
		c.logger.Error("Erro ao verificar cliente da venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar venda", err.Error()))
		return
	}
	if !exists {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
		return
	}

	s, err := saledomain.NewSale(req.ClientID, req.StaffID, req.Discount, req.PaymentMethod, req.Notes)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar venda", err.Error()))
		return
	}

	items := make([]saledomain.NewItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, saledomain.NewItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Discount:  it.Discount,
		})
	}

	if err := c.saleRepo.CreateWithItems(ctx, s, items); err != nil {
		switch {
		case errors.Is(err, saledomain.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", err.Error()))
		case errors.Is(err, saledomain.ErrInactiveProduct):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Produto inativo", err.Error()))
		case errors.Is(err, saledomain.ErrInsufficientStock):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Estoque insuficiente", err.Error()))
		case errors.Is(err, saledomain.ErrNoItems), errors.Is(err, saledomain.ErrInvalidQuantity), errors.Is(err, saledomain.ErrNegativeDiscount):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar venda", err.Error()))
		default:
			c.logger.Error("Erro ao criar venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao salvar venda", err.Error()))
		}
		return
	}

	created, err := c.saleRepo.FindByID(ctx, s.ID)
	if err != nil {
		c.logger.Error("Erro ao recarregar venda", "error", err)
		ctx.JSON(http.StatusCreated, dto.ToSaleResponse(s))
		return
	}

	if created.ClientEmail != "" {
		mailer.Dispatch(c.mailer, c.logger, created.ClientEmail, "Comprovante de compra", saleReceiptBody(created))
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(created))
}

// saleReceiptBody monta o corpo HTML do comprovante enviado ao cliente
func saleReceiptBody(s *saledomain.Sale) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Olá, %s!</p><p>Recebemos sua compra de %s:</p><ul>", s.ClientName, s.Date.Format("02/01/2006"))
	for _, it := range s.Items {
		fmt.Fprintf(&b, "<li>%dx %s - R$ %s</li>", it.Quantity, it.ProductName, it.Total.StringFixed(2))
	}
	fmt.Fprintf(&b, "</ul><p>Total: <strong>R$ %s</strong></p>", s.Total.StringFixed(2))
	return b.String()
}

// saleCancellationBody monta o corpo HTML do aviso de cancelamento da compra
func saleCancellationBody(s *saledomain.Sale) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Olá, %s!</p><p>Sua compra de %s no valor de R$ %s foi cancelada.</p>", s.ClientName, s.Date.Format("02/01/2006"), s.Total.StringFixed(2))
	b.WriteString("<p>Os itens foram devolvidos ao estoque.</p>")
	return b.String()
}

// Get retorna uma venda pelo ID, com seus itens
// @Summary Buscar venda
// @Tags vendas
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /vendas/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	s, err := c.saleRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Venda não encontrada", ""))
			return
		}
		c.logger.Error("Erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// List lista as vendas
// @Summary Listar vendas
// @Tags vendas
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Param cliente_id query string false "Filtrar por cliente"
// @Param funcionario_id query string false "Filtrar por funcionário"
// @Param data_inicio query string false "Data inicial do período"
// @Param data_fim query string false "Data final do período"
// @Param forma_pagamento query string false "Filtrar por forma de pagamento"
// @Param status query string false "Filtrar por status"
// @Success 200 {object} dto.SaleListResponse
// @Router /vendas [get]
func (c *SaleController) List(ctx *gin.Context) {
	p := pagination(ctx)
	filter := saledomain.Filter{
		ClientID:      ctx.Query("cliente_id"),
		StaffID:       ctx.Query("funcionario_id"),
		PaymentMethod: saledomain.PaymentMethod(ctx.Query("forma_pagamento")),
		Status:        saledomain.Status(ctx.Query("status")),
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

	sales, err := c.saleRepo.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar vendas", err.Error()))
		return
	}

	total, err := c.saleRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("Erro ao contar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, total, p))
}

// Update atualiza forma de pagamento, status e observações da venda.
// Mudar o status para cancelada devolve o estoque de todos os itens.
// @Summary Atualizar venda
// @Tags vendas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Param venda body dto.SaleUpdateRequest true "Dados da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /vendas/{id} [put]
func (c *SaleController) Update(ctx *gin.Context) {
	var req dto.SaleUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	id := ctx.Param("id")
	s, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Venda não encontrada", ""))
			return
		}
		c.logger.Error("Erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar venda", err.Error()))
		return
	}

	if s.IsCancelled() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao atualizar venda", saledomain.ErrCancelled.Error()))
		return
	}

	if req.Status == saledomain.StatusCancelled {
		cancelled, err := c.saleRepo.Cancel(ctx, id)
		if err != nil {
			if errors.Is(err, saledomain.ErrAlreadyCancelled) {
				ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao atualizar venda", err.Error()))
				return
			}
			c.logger.Error("Erro ao cancelar venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao cancelar venda", err.Error()))
			return
		}

		if cancelled.ClientEmail != "" {
			mailer.Dispatch(c.mailer, c.logger, cancelled.ClientEmail, "Cancelamento de compra", saleCancellationBody(cancelled))
		}

		ctx.JSON(http.StatusOK, dto.ToSaleResponse(cancelled))
		return
	}

	if req.PaymentMethod != "" {
		s.PaymentMethod = req.PaymentMethod
	}
	if req.Status != "" {
		s.Status = req.Status
	}
	if req.Notes != nil {
		s.Notes = *req.Notes
	}
	s.UpdatedAt = time.Now()

	if err := c.saleRepo.Update(ctx, s); err != nil {
		c.logger.Error("Erro ao atualizar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// Delete remove uma venda devolvendo o estoque de seus itens
// @Summary Excluir venda
// @Tags vendas
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /vendas/{id} [delete]
func (c *SaleController) Delete(ctx *gin.Context) {
	deleted, err := c.saleRepo.Delete(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Venda não encontrada", ""))
			return
		}
		c.logger.Error("Erro ao excluir venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir venda", err.Error()))
		return
	}

	if deleted.ClientEmail != "" {
		mailer.Dispatch(c.mailer, c.logger, deleted.ClientEmail, "Cancelamento de compra", saleCancellationBody(deleted))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Venda excluída com sucesso", nil))
}
