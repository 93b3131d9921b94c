package main

import (
	"fmt"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	_ "github.com/rogerio-castellano/inventory-manager/docs"
	"github.com/rogerio-castellano/inventory-manager/internal/config"
	"github.com/rogerio-castellano/inventory-manager/internal/db"
	api "github.com/rogerio-castellano/inventory-manager/internal/http"
	"github.com/rogerio-castellano/inventory-manager/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

// @title Inventory Manager API
// @version 1.0
// @description REST API for managing inventory products and aggregate statistics.
// @BasePath /
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	var products repo.ProductRepository
	switch cfg.Store {
	case "memory":
		mem := repo.NewInMemoryProductRepository()
		mem.SeedSampleProducts()
		products = mem
	case "postgres":
		database, err := db.Connect(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("could not connect to database")
		}
		defer database.Close()
		if err := db.EnsureSchema(database); err != nil {
			log.Fatal().Err(err).Msg("could not ensure database schema")
		}
		products = repo.NewPostgresProductRepository(database)
	default:
		log.Fatal().Str("store", cfg.Store).Msg("unknown STORE value, expected memory or postgres")
	}

	r := api.NewRouter(handlers.New(products))

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Str("addr", addr).Str("store", cfg.Store).Msg("server running")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
