package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/controller"
	userdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/auth"
)

// RegisterTaskRoutes registra as rotas do módulo de tarefas
func RegisterTaskRoutes(r *gin.RouterGroup, taskController *controller.TaskController, jwtService *auth.JWTService) {
	tasks := r.Group("/tarefas")
	tasks.Use(auth.JWTAuthMiddleware(jwtService))
	tasks.Use(auth.RoleAuthMiddleware(string(userdomain.RoleAdmin), string(userdomain.RoleStaff)))
	{
		tasks.POST("", taskController.Create)
		tasks.GET("", taskController.List)
		tasks.GET("/:id", taskController.Get)
		tasks.PUT("/:id", taskController.Update)
		tasks.DELETE("/:id", taskController.Delete)
	}
}
