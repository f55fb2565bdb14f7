package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/controller"
	userdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/auth"
)

// RegisterProductRoutes registra as rotas do módulo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController, jwtService *auth.JWTService) {
	products := r.Group("/produtos")
	products.Use(auth.JWTAuthMiddleware(jwtService))
	{
		products.POST("", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin), string(userdomain.RoleStaff)), productController.Create)
		products.GET("", productController.List)
		products.GET("/:id", productController.Get)
		products.PUT("/:id", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin), string(userdomain.RoleStaff)), productController.Update)
		products.POST("/:id/estoque", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin), string(userdomain.RoleStaff)), productController.AdjustStock)
		products.DELETE("/:id", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin)), productController.Delete)
	}
}
