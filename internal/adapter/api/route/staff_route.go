package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/controller"
	userdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/auth"
)

// RegisterStaffRoutes registra as rotas do módulo de funcionários.
// Cadastro, listagem e alteração (cargo e salário) são restritos ao
// administrador; consultas pontuais ficam abertas a qualquer autenticado.
func RegisterStaffRoutes(r *gin.RouterGroup, staffController *controller.StaffController, jwtService *auth.JWTService) {
	staff := r.Group("/funcionarios")
	staff.Use(auth.JWTAuthMiddleware(jwtService))
	{
		staff.POST("", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin)), staffController.Create)
		staff.GET("", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin)), staffController.List)
		staff.GET("/:id", staffController.Get)
		staff.PUT("/:id", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin)), staffController.Update)
		staff.DELETE("/:id", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin)), staffController.Delete)
		staff.GET("/:id/agendamentos", staffController.GetAppointments)
		staff.GET("/:id/tarefas", staffController.GetTasks)
	}
}
