package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/controller"
	userdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/auth"
)

// RegisterSupplierRoutes registra as rotas do módulo de fornecedores
func RegisterSupplierRoutes(r *gin.RouterGroup, supplierController *controller.SupplierController, jwtService *auth.JWTService) {
	suppliers := r.Group("/fornecedores")
	suppliers.Use(auth.JWTAuthMiddleware(jwtService))
	{
		suppliers.POST("", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin), string(userdomain.RoleStaff)), supplierController.Create)
		suppliers.GET("", supplierController.List)
		suppliers.GET("/:id", supplierController.Get)
		suppliers.PUT("/:id", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin), string(userdomain.RoleStaff)), supplierController.Update)
		suppliers.DELETE("/:id", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin)), supplierController.Delete)
		suppliers.GET("/:id/produtos", supplierController.GetProducts)
	}
}
