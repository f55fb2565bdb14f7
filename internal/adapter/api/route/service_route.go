package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/controller"
	userdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/auth"
)

// RegisterServiceRoutes registra as rotas do módulo de serviços
func RegisterServiceRoutes(r *gin.RouterGroup, serviceController *controller.ServiceController, jwtService *auth.JWTService) {
	services := r.Group("/servicos")
	services.Use(auth.JWTAuthMiddleware(jwtService))
	{
		services.POST("", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin), string(userdomain.RoleStaff)), serviceController.Create)
		services.GET("", serviceController.List)
		services.GET("/:id", serviceController.Get)
		services.PUT("/:id", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin), string(userdomain.RoleStaff)), serviceController.Update)
		services.DELETE("/:id", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin)), serviceController.Delete)
		services.GET("/:id/agendamentos", serviceController.GetAppointments)
	}
}
