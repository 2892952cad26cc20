// create_admin da de alta un usuario de administración de feeds.
//
// Uso: go run ./cmd/create_admin -email admin@shop.nl -password secreto123 [-name Admin] [-role admin]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/tweakwise-api/internal/application/auth"
	"github.com/jhoicas/tweakwise-api/internal/domain"
	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
	"github.com/jhoicas/tweakwise-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tweakwise-api/pkg/config"
	"github.com/jhoicas/tweakwise-api/pkg/logger"
)

func main() {
	email := flag.String("email", "", "email del usuario")
	password := flag.String("password", "", "password (mínimo 8 caracteres)")
	name := flag.String("name", "", "nombre visible")
	role := flag.String("role", entity.RoleAdmin, "admin | editor | viewer")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	if cfg.App.MigrationsAuto {
		if err := postgres.Migrate(cfg.DB.ConnectionString(), log.Component("migrate")); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{})
	user, err := uc.CreateUser(ctx, *email, *password, *name, *role)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		fmt.Fprintln(os.Stderr, "email requerido, password de al menos 8 caracteres y rol admin|editor|viewer")
		flag.Usage()
		pool.Close()
		os.Exit(2)
	case errors.Is(err, domain.ErrDuplicate):
		log.Warn().Str("email", *email).Msg("el usuario ya existe")
		return
	case err != nil:
		log.Error().Err(err).Msg("crear usuario")
		pool.Close()
		os.Exit(1)
	}
	log.Info().Str("id", user.ID).Str("email", user.Email).Str("role", user.Role).Msg("usuario creado")
}
