package main

import (
	"context"
	"gin-sweetshop/constants"
	"gin-sweetshop/controllers"
	"gin-sweetshop/infra"
	"gin-sweetshop/middlewares"
	"gin-sweetshop/models"
	"gin-sweetshop/repositories"
	"gin-sweetshop/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, tokenDB *gorm.DB) *gin.Engine {

	sweetRepository := repositories.NewSweetRepository(db)
	sweetService := services.NewSweetService(sweetRepository)
	sweetController := controllers.NewSweetController(sweetService)

	authRepository := repositories.NewAuthRepository(db)
	tokenRepository := repositories.NewTokenRepository(tokenDB)
	authService := services.NewAuthService(authRepository, tokenRepository)
	authController := controllers.NewAuthController(authService)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	authRouter := api.Group("/auth")
	authRouter.POST("/register", authController.Register)
	authRouter.POST("/login", authController.Login)
	authRouter.POST("/logout", authController.Logout)

	sweetRouter := api.Group("/sweets")
	sweetRouterWithAuth := api.Group("/sweets", middlewares.AuthMiddleware(authService))
	sweetRouterWithAdminAuth := api.Group("/sweets",
		middlewares.AuthMiddleware(authService),
		middlewares.RoleBasedAccessControl(constants.RoleAdmin))

	sweetRouter.GET("", sweetController.FindAll)
	sweetRouter.GET("/search", sweetController.Search)
	sweetRouterWithAuth.POST("/:id/purchase", sweetController.Purchase)
	sweetRouterWithAdminAuth.POST("", sweetController.Create)
	sweetRouterWithAdminAuth.POST("/:id/restock", sweetController.Restock)
	sweetRouterWithAdminAuth.PUT("/:id", sweetController.Update)
	sweetRouterWithAdminAuth.DELETE("/:id", sweetController.Delete)

	return r
}

func initDB() (*gorm.DB, *gorm.DB) {
	infra.Initialize()

	db := infra.SetupDB()
	tokenDB := infra.SetupTokenDB()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(&models.User{}, &models.Sweet{}); err != nil {
			panic("Failed to migrate database")
		}
		if err := tokenDB.AutoMigrate(&models.BlacklistedToken{}); err != nil {
			log.Printf("Failed to migrate token blacklist database: %v", err)
		}
	}

	return db, tokenDB
}

func main() {
	db, tokenDB := initDB()
	r := setupRouter(db, tokenDB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
