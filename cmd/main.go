// Package main provides the API to manage customers, accounts and account operations.
package main

import (
	"github.com/rs/zerolog/log"

	"ebank/cmd/httpserver"
	"ebank/internal/middleware"
	"ebank/pkg/configpkg"
	"ebank/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	if err := dbpkg.Migrate(config.MigrationsURL, config.DBSource); err != nil {
		logger.Fatal().Err(err).Msg("cannot run database migrations")
	}

	server, err := httpserver.New(db, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Msg("EBANK API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
