package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/imgdle/go-server/internal/dataset"
	"github.com/imgdle/go-server/internal/game"
	"github.com/imgdle/go-server/internal/httpserver"
	"github.com/imgdle/go-server/internal/schema"
	"github.com/imgdle/go-server/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// Dataset is mandatory: no records, no game.
	data, err := dataset.Load(os.Getenv("DATA_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dataset")
	}

	overrides, err := schema.LoadOverrides(os.Getenv("SCHEMA_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load schema overrides")
	}
	fields := schema.Apply(schema.Fields(), overrides)

	db, err := openDB(getEnv("DB_PATH", "./data/app.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	g := game.New(data, fields, overrides.MaxTriesOrDefault())
	srv := httpserver.New(g, store.NewSQLiteStore(db), db)

	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Int("records", data.Len()).Msg("starting imgdle-go")
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
