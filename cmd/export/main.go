package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/imgdle/go-server/internal/export"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := export.Execute(); err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}
}
