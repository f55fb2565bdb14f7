package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/dto"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/repository"
	productdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/product"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/logger"
)

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	productRepo productdomain.Repository
	logger      logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo productdomain.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Tags produtos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param produto body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /produtos [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if req.Barcode != "" {
		exists, err := c.productRepo.ExistsByBarcode(ctx, req.Barcode, "")
		if err != nil {
			c.logger.Error("Erro ao verificar código de barras", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar produto", err.Error()))
			return
		}
		if exists {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Código de barras já cadastrado", ""))
			return
		}
	}

	p, err := productdomain.NewProduct(req.Name, req.Price)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao criar produto", err.Error()))
		return
	}
	p.Description = req.Description
	p.CostPrice = req.CostPrice
	p.Stock = req.Stock
	p.MinStock = req.MinStock
	p.CategoryID = req.CategoryID
	p.SupplierID = req.SupplierID
	p.Barcode = req.Barcode
	if req.Status != "" {
		p.Status = req.Status
	}

	if err := c.productRepo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Código de barras já cadastrado", ""))
			return
		}
		c.logger.Error("Erro ao criar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Tags produtos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /produtos/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	p, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// List lista os produtos
// @Summary Listar produtos
// @Tags produtos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Param nome query string false "Filtrar por nome"
// @Param categoria_id query string false "Filtrar por categoria"
// @Param fornecedor_id query string false "Filtrar por fornecedor"
// @Param codigo_barras query string false "Filtrar por código de barras"
// @Param status query string false "Filtrar por status"
// @Param estoque_baixo query bool false "Somente produtos com estoque baixo"
// @Success 200 {object} dto.ProductListResponse
// @Router /produtos [get]
func (c *ProductController) List(ctx *gin.Context) {
	p := pagination(ctx)
	filter := productdomain.Filter{
		Name:       ctx.Query("nome"),
		CategoryID: ctx.Query("categoria_id"),
		SupplierID: ctx.Query("fornecedor_id"),
		Barcode:    ctx.Query("codigo_barras"),
		Status:     productdomain.Status(ctx.Query("status")),
		LowStock:   ctx.Query("estoque_baixo") == "true",
	}

	products, err := c.productRepo.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		c.logger.Error("Erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar produtos", err.Error()))
		return
	}

	total, err := c.productRepo.Count(ctx, filter)
	if err != nil {
		c.logger.Error("Erro ao contar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, p))
}

// Update atualiza um produto. O estoque só é alterado pelo ajuste dedicado.
// @Summary Atualizar produto
// @Tags produtos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param produto body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /produtos/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	id := ctx.Param("id")
	p, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
		return
	}

	if req.Barcode != "" && req.Barcode != p.Barcode {
		exists, err := c.productRepo.ExistsByBarcode(ctx, req.Barcode, id)
		if err != nil {
			c.logger.Error("Erro ao verificar código de barras", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar produto", err.Error()))
			return
		}
		if exists {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Código de barras já cadastrado", ""))
			return
		}
	}

	if req.Price.IsNegative() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao atualizar produto", productdomain.ErrInvalidPrice.Error()))
		return
	}

	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.CostPrice = req.CostPrice
	p.MinStock = req.MinStock
	p.CategoryID = req.CategoryID
	p.SupplierID = req.SupplierID
	p.Barcode = req.Barcode
	if req.Status != "" {
		p.Status = req.Status
	}
	p.UpdatedAt = time.Now()

	if err := c.productRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Código de barras já cadastrado", ""))
			return
		}
		c.logger.Error("Erro ao atualizar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// AdjustStock aplica uma entrada ou saída manual de estoque
// @Summary Ajustar estoque
// @Description Adiciona ou remove unidades do estoque do produto de forma atômica
// @Tags produtos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param ajuste body dto.StockAdjustRequest true "Ajuste de estoque"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /produtos/{id}/estoque [post]
func (c *ProductController) AdjustStock(ctx *gin.Context) {
	var req dto.StockAdjustRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	delta := req.Quantity
	if req.Operation == "remover" {
		delta = -req.Quantity
	}

	p, err := c.productRepo.AdjustStock(ctx, ctx.Param("id"), delta)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
			return
		}
		if errors.Is(err, productdomain.ErrInsufficientStock) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Estoque insuficiente", ""))
			return
		}
		c.logger.Error("Erro ao ajustar estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao ajustar estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Delete remove um produto sem vendas associadas
// @Summary Excluir produto
// @Tags produtos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /produtos/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	count, err := c.productRepo.CountSaleItems(ctx, id)
	if err != nil {
		c.logger.Error("Erro ao contar vendas do produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir produto", err.Error()))
		return
	}
	if count > 0 {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Produto possui vendas associadas", ""))
		return
	}

	if err := c.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao excluir produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Produto excluído com sucesso", nil))
}
