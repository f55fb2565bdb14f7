package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/controller"
	userdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/auth"
)

// RegisterServiceCategoryRoutes registra as rotas de categorias de serviço
func RegisterServiceCategoryRoutes(r *gin.RouterGroup, c *controller.ServiceCategoryController, jwtService *auth.JWTService) {
	categories := r.Group("/categorias-servico")
	categories.Use(auth.JWTAuthMiddleware(jwtService))
	{
		categories.POST("", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin), string(userdomain.RoleStaff)), c.Create)
		categories.GET("", c.List)
		categories.GET("/:id", c.Get)
		categories.PUT("/:id", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin), string(userdomain.RoleStaff)), c.Update)
		categories.DELETE("/:id", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin)), c.Delete)
		categories.GET("/:id/servicos", c.GetServices)
	}
}

// RegisterProductCategoryRoutes registra as rotas de categorias de produto
func RegisterProductCategoryRoutes(r *gin.RouterGroup, c *controller.ProductCategoryController, jwtService *auth.JWTService) {
	categories := r.Group("/categorias-produto")
	categories.Use(auth.JWTAuthMiddleware(jwtService))
	{
		categories.POST("", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin), string(userdomain.RoleStaff)), c.Create)
		categories.GET("", c.List)
		categories.GET("/:id", c.Get)
		categories.PUT("/:id", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin), string(userdomain.RoleStaff)), c.Update)
		categories.DELETE("/:id", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin)), c.Delete)
		categories.GET("/:id/produtos", c.GetProducts)
	}
}
