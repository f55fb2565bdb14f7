package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/controller"
	userdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/auth"
)

// RegisterUserRoutes registra as rotas do módulo de usuários
func RegisterUserRoutes(r *gin.RouterGroup, userController *controller.UserController, jwtService *auth.JWTService) {
	users := r.Group("/usuarios")
	users.Use(auth.JWTAuthMiddleware(jwtService))
	{
		users.POST("", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin)), userController.Create)
		users.GET("", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin)), userController.List)
		users.GET("/:id", userController.Get)
		users.PUT("/:id", userController.Update)
		users.PATCH("/:id/senha", userController.UpdatePassword)
		users.DELETE("/:id", auth.RoleAuthMiddleware(string(userdomain.RoleAdmin)), userController.Delete)
	}
}
