package main

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/tecnologiawebnetsystem/pet-shop-back/docs"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/controller"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/route"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/repository"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/config"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/infrastructure/database"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/auth"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/logger"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/mailer"
)

// App representa a aplicação e suas dependências
type App struct {
	cfg    *config.Config
	router *gin.Engine
	db     *database.PostgresDB
	logger logger.Logger
}

// NewApp cria uma nova instância da aplicação com todas as dependências ligadas
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.NewLogger(cfg.App.Development)

	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.Expiration)
	if err != nil {
		return nil, err
	}

	var m mailer.Mailer
	if cfg.SMTP.Host != "" {
		m = mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	} else {
		log.Warn("SMTP_HOST não configurado, e-mails serão descartados")
		m = mailer.NoopMailer{}
	}

	// Repositórios
	pool := db.Pool()
	userRepo := repository.NewUserRepository(pool)
	resetRepo := repository.NewResetTokenRepository(pool)
	clientRepo := repository.NewClientRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	petRepo := repository.NewPetRepository(pool)
	serviceCategoryRepo := repository.NewServiceCategoryRepository(pool)
	productCategoryRepo := repository.NewProductCategoryRepository(pool)
	supplierRepo := repository.NewSupplierRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	serviceRepo := repository.NewServiceRepository(pool)
	appointmentRepo := repository.NewAppointmentRepository(pool)
	saleRepo := repository.NewSaleRepository(pool)
	taskRepo := repository.NewTaskRepository(pool)

	// Controllers
	authController := controller.NewAuthController(userRepo, resetRepo, jwtService, m, cfg.App.FrontendURL, log)
	userController := controller.NewUserController(userRepo, log)
	clientController := controller.NewClientController(clientRepo, userRepo, petRepo, appointmentRepo, saleRepo, log)
	staffController := controller.NewStaffController(staffRepo, userRepo, appointmentRepo, taskRepo, log)
	petController := controller.NewPetController(petRepo, clientRepo, appointmentRepo, log)
	serviceCategoryController := controller.NewServiceCategoryController(serviceCategoryRepo, serviceRepo, log)
	productCategoryController := controller.NewProductCategoryController(productCategoryRepo, productRepo, log)
	supplierController := controller.NewSupplierController(supplierRepo, productRepo, log)
	productController := controller.NewProductController(productRepo, log)
	serviceController := controller.NewServiceController(serviceRepo, appointmentRepo, log)
	appointmentController := controller.NewAppointmentController(appointmentRepo, clientRepo, petRepo, serviceRepo, staffRepo, m, log)
	saleController := controller.NewSaleController(saleRepo, clientRepo, m, log)
	saleItemController := controller.NewSaleItemController(saleRepo, log)
	taskController := controller.NewTaskController(taskRepo, staffRepo, log)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	route.RegisterAuthRoutes(api, authController)
	route.RegisterUserRoutes(api, userController, jwtService)
	route.RegisterClientRoutes(api, clientController, jwtService)
	route.RegisterStaffRoutes(api, staffController, jwtService)
	route.RegisterPetRoutes(api, petController, jwtService)
	route.RegisterServiceCategoryRoutes(api, serviceCategoryController, jwtService)
	route.RegisterProductCategoryRoutes(api, productCategoryController, jwtService)
	route.RegisterSupplierRoutes(api, supplierController, jwtService)
	route.RegisterProductRoutes(api, productController, jwtService)
	route.RegisterServiceRoutes(api, serviceController, jwtService)
	route.RegisterAppointmentRoutes(api, appointmentController, jwtService)
	route.RegisterSaleRoutes(api, saleController, jwtService)
	route.RegisterSaleItemRoutes(api, saleItemController, jwtService)
	route.RegisterTaskRoutes(api, taskController, jwtService)

	return &App{
		cfg:    cfg,
		router: router,
		db:     db,
		logger: log,
	}, nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	addr := fmt.Sprintf(":%d", a.cfg.Server.Port)
	a.logger.Info("Servidor iniciado", "addr", addr)
	return a.router.Run(addr)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
