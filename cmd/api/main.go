package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/tweakwise-api/internal/application/auth"
	"github.com/jhoicas/tweakwise-api/internal/application/render"
	"github.com/jhoicas/tweakwise-api/internal/application/usecase"
	"github.com/jhoicas/tweakwise-api/internal/domain/storefront"
	"github.com/jhoicas/tweakwise-api/internal/infrastructure/cache"
	"github.com/jhoicas/tweakwise-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/tweakwise-api/internal/interfaces/http"
	"github.com/jhoicas/tweakwise-api/pkg/config"
	"github.com/jhoicas/tweakwise-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("platform_version", cfg.Storefront.PlatformVersion).
		Msg("iniciando aplicación")

	if cfg.App.MigrationsAuto {
		if err := postgres.Migrate(cfg.DB.ConnectionString(), log.Component("migrate")); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	feedRepo := postgres.NewFeedRepository(pool)
	channelRepo := postgres.NewSalesChannelRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Gates de versión: se fijan una vez al arrancar.
	gate, err := storefront.NewSemverGate(
		cfg.Storefront.PlatformVersion,
		cfg.Storefront.VariantListingMinVersion,
		cfg.Storefront.ListingConfigMinVersion,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("versiones de plataforma")
	}
	resolver := storefront.NewVariantResolver(productRepo, gate)
	log.Info().Str("behavior", resolver.Behavior().String()).Msg("selección de variante canónica")

	var indexer render.CategoryIndexer = render.NewTreeIndexer(categoryRepo, cfg.Storefront.NavigationDepth)
	if cfg.Redis.Enabled() && cfg.Storefront.CategoryCacheTTL > 0 {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		indexer = cache.NewCategoryIndexCache(rdb, indexer, cfg.Storefront.CategoryCacheTTL, log.Component("category_cache"))
	}

	subscriber := render.NewSubscriber(feedRepo, indexer, resolver, log.Component("render"))
	renderUC := render.NewRenderConfigUseCase(channelRepo, productRepo, subscriber)
	feedUC := usecase.NewFeedUseCase(feedRepo, channelRepo, txRunner)
	productUC := usecase.NewProductUseCase(productRepo, resolver)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tweakwise API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		FeedUC:    feedUC,
		RenderUC:  renderUC,
		ProductUC: productUC,
		JWTSecret: cfg.JWT.Secret,
		Log:       log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
