package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/controller"
	userdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/auth"
)

// RegisterAppointmentRoutes registra as rotas do módulo de agendamentos
func RegisterAppointmentRoutes(r *gin.RouterGroup, appointmentController *controller.AppointmentController, jwtService *auth.JWTService) {
	appointments := r.Group("/agendamentos")
	appointments.Use(auth.JWTAuthMiddleware(jwtService))
	{
		appointments.POST("", appointmentController.Create)
		appointments.GET("", appointmentController.List)
		appointments.GET("/:id", appointmentController.Get)
		appointments.PUT("/:id", appointmentController.Update)
		appointments.DELETE("/:id", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin), string(userdomain.RoleStaff)), appointmentController.Delete)
	}
}
