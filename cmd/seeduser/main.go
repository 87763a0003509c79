package main

// seeduser creates the initial operator account. It is idempotent: running
// it again with an existing username is a no-op.
//
// Usage: seeduser -username admin -password <secret>

import (
	"context"
	"errors"
	"flag"
	"time"

	"inventia/internal/config"
	"inventia/internal/infra"
	"inventia/internal/model"
	"inventia/internal/repository"
	"inventia/internal/service"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	username := flag.String("username", "admin", "username for the seeded account")
	password := flag.String("password", "", "password for the seeded account (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal().Msg("-password is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := repository.NewUsuarioRepository(db)
	if _, err := repo.FindByUsername(ctx, *username); err == nil {
		log.Info().Str("username", *username).Msg("user already exists — nothing to do")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal().Err(err).Msg("failed to query user")
	}

	hash, err := service.HashPassword(*password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}
	u := &model.Usuario{
		Username:      *username,
		PasswordHash:  hash,
		FechaRegistro: time.Now(),
	}
	if err := repo.Create(ctx, u); err != nil {
		log.Fatal().Err(err).Msg("failed to create user")
	}
	log.Info().Str("username", *username).Msg("user created")
}
