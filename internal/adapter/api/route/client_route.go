package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/controller"
	userdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/auth"
)

// RegisterClientRoutes registra as rotas do módulo de clientes
func RegisterClientRoutes(r *gin.RouterGroup, clientController *controller.ClientController, jwtService *auth.JWTService) {
	clients := r.Group("/clientes")
	clients.Use(auth.JWTAuthMiddleware(jwtService))
	{
		clients.POST("", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin)), clientController.Create)
		clients.GET("", clientController.List)
		clients.GET("/:id", clientController.Get)
		clients.PUT("/:id", clientController.Update)
		clients.DELETE("/:id", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin)), clientController.Delete)
		clients.GET("/:id/pets", clientController.GetPets)
		clients.GET("/:id/agendamentos", clientController.GetAppointments)
		clients.GET("/:id/vendas", clientController.GetSales)
	}
}
