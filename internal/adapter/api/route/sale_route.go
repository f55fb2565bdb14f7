package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/controller"
	userdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/auth"
)

// RegisterSaleRoutes registra as rotas do módulo de vendas
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController, jwtService *auth.JWTService) {
	sales := r.Group("/vendas")
	sales.Use(auth.JWTAuthMiddleware(jwtService))
	{
		sales.POST("", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin), string(userdomain.RoleStaff)), saleController.Create)
		sales.GET("", saleController.List)
		sales.GET("/:id", saleController.Get)
		sales.PUT("/:id", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin), string(userdomain.RoleStaff)), saleController.Update)
		sales.DELETE("/:id", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin)), saleController.Delete)
	}
}

// RegisterSaleItemRoutes registra as rotas de itens de venda avulsos
func RegisterSaleItemRoutes(r *gin.RouterGroup, saleItemController *controller.SaleItemController, jwtService *auth.JWTService) {
	items := r.Group("/itens-venda")
	items.Use(auth.JWTAuthMiddleware(jwtService))
	{
		items.POST("", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin), string(userdomain.RoleStaff)), saleItemController.Create)
		items.GET("", saleItemController.List)
		items.GET("/:id", saleItemController.Get)
		items.PUT("/:id", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin), string(userdomain.RoleStaff)), saleItemController.Update)
		items.DELETE("/:id", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin), string(userdomain.RoleStaff)), saleItemController.Delete)
	}
}
