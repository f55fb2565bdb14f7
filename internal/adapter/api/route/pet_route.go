package route

import (
	"github.com/gin-gonic/gin"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/controller"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/auth"
)

// RegisterPetRoutes registra as rotas do módulo de pets
func RegisterPetRoutes(r *gin.RouterGroup, petController *controller.PetController, jwtService *auth.JWTService) {
	pets := r.Group("/pets")
	pets.Use(auth.JWTAuthMiddleware(jwtService))
	{
		pets.POST("", petController.Create)
		pets.GET("", petController.List)
		pets.GET("/:id", petController.Get)
		pets.PUT("/:id", petController.Update)
		pets.DELETE("/:id", petController.Delete)
		pets.GET("/:id/agendamentos", petController.GetAppointments)
	}
}
