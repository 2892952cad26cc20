package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tweakwise-api/internal/application/auth"
	"github.com/jhoicas/tweakwise-api/internal/application/render"
	"github.com/jhoicas/tweakwise-api/internal/application/usecase"
	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
	"github.com/jhoicas/tweakwise-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	FeedUC    *usecase.FeedUseCase
	RenderUC  *render.RenderConfigUseCase
	ProductUC *usecase.ProductUseCase
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Storefront (público): lo consulta el render de la tienda
	storefrontHandler := NewStorefrontHandler(deps.RenderUC, deps.Log)
	api.Get("/storefront/render-config", storefrontHandler.RenderConfig)

	// Feeds (protegido): lectura para cualquier rol, escritura admin/editor
	feeds := api.Group("/feeds", AuthMiddleware(deps.JWTSecret))
	feedHandler := NewFeedHandler(deps.FeedUC)
	canRead := RequireRole(entity.RoleAdmin, entity.RoleEditor, entity.RoleViewer)
	canWrite := RequireRole(entity.RoleAdmin, entity.RoleEditor)
	feeds.Get("/", canRead, feedHandler.List)
	feeds.Get("/:id", canRead, feedHandler.GetByID)
	feeds.Post("/", canWrite, feedHandler.Create)
	feeds.Put("/:id", canWrite, feedHandler.Update)
	feeds.Delete("/:id", RequireRole(entity.RoleAdmin), feedHandler.Delete)

	// Productos (protegido, solo lectura)
	products := api.Group("/products", AuthMiddleware(deps.JWTSecret), canRead)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/canonical", productHandler.Canonical)
}
