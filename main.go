package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/vocab-jumble/internal/config"
	"github.com/robalobadob/vocab-jumble/internal/httpserver"
	"github.com/robalobadob/vocab-jumble/internal/jumble"
	"github.com/robalobadob/vocab-jumble/internal/session"
	"github.com/robalobadob/vocab-jumble/internal/store"
	"github.com/robalobadob/vocab-jumble/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	vocab, err := loadVocab(cfg.Vocab)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load vocabulary")
	}
	log.Info().Int("words", vocab.Len()).Msg("vocabulary loaded")

	st, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	// Rounds older than the session TTL are unreachable.
	go store.RunPruner(context.Background(), st, cfg.SessionTTL, cfg.SessionTTL)

	sessions, err := session.NewManager(cfg.SecretKey, cfg.SessionTTL, cfg.Production)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up sessions")
	}
	gen, err := jumble.NewSeeded()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed generator")
	}

	srv := httpserver.New(httpserver.Options{
		Vocab:        vocab,
		Store:        st,
		Sessions:     sessions,
		Generator:    gen,
		Target:       cfg.SuccessAtCount,
		DailySalt:    cfg.DailySalt,
		ClientOrigin: cfg.ClientOrigin,
	})
	log.Info().Str("port", cfg.Port).Str("store", cfg.Store).Msg("starting vocab server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func loadVocab(path string) (*words.Vocab, error) {
	if path == "" {
		return words.LoadDefault()
	}
	return words.LoadFile(path)
}

func openStore(cfg config.Config) (store.Store, error) {
	if cfg.Store == "sqlite" {
		return store.OpenSQLite(cfg.DBPath)
	}
	return store.NewMemoryStore(), nil
}
