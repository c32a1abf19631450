package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/aurafix3-tech/aurafix-cosmetics/internal/server/http/handlers"
	"github.com/aurafix3-tech/aurafix-cosmetics/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api")

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)

	cart := api.Group("/cart")
	cart.Use(middleware.AuthRequired(facade))
	cart.GET("", cartHandler.Get)
	cart.DELETE("", cartHandler.Clear)
	cart.POST("/items", cartHandler.AddItem)
	cart.PUT("/items/:id", cartHandler.UpdateItem)
	cart.DELETE("/items/:id", cartHandler.RemoveItem)
	cart.POST("/validate", cartHandler.Validate)

	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))
	orders.POST("", orderHandler.Create)
	orders.GET("/my-orders", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id/cancel", orderHandler.Cancel)

	admin := orders.Group("")
	admin.Use(middleware.AdminRequired())
	admin.PUT("/:id/status", orderHandler.UpdateStatus)

	return engine
}
