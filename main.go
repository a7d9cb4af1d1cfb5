package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lexigames/guessle/internal/catalog"
	"github.com/lexigames/guessle/internal/httpserver"
	"github.com/lexigames/guessle/internal/sqlitedb"
	"github.com/lexigames/guessle/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := catalog.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load game catalog")
	}

	db, err := sqlitedb.Open(getEnv("DB_PATH", "./data/guessle.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	if err := sqlitedb.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, db)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Int("games", len(catalog.List())).Msg("starting guessle server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
