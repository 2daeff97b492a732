package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/carteira"
	"github.com/etnz/carteira/boltstore"
	"github.com/etnz/carteira/cotahist"
	"github.com/etnz/carteira/logger"
	"github.com/etnz/carteira/sqlstore"
	"github.com/rs/zerolog"
)

// boltScheme prefixes a bbolt database path in -db.
const boltScheme = "bolt://"

// OpenStore opens the store designated by dsn: bolt://<file> for bbolt,
// anything else for sqlstore.
func OpenStore(ctx context.Context, dsn string, log zerolog.Logger) (carteira.Store, error) {
	if path, ok := strings.CutPrefix(dsn, boltScheme); ok {
		if path == "" {
			return nil, fmt.Errorf("%w: empty bolt path", carteira.ErrStorageUnavailable)
		}
		s, err := boltstore.Open(path, log)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", carteira.ErrStorageUnavailable, err)
		}
		return s, nil
	}
	s, err := sqlstore.Open(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", carteira.ErrStorageUnavailable, err)
	}
	return s, nil
}

// newLogger returns the logger configured by the global flags.
func newLogger() zerolog.Logger {
	return logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Output: stderr})
}

// OpenBook opens the configured store and price file. done must be called
// once done with the book.
func OpenBook(ctx context.Context) (book *carteira.Book, done func(), err error) {
	log := newLogger()
	store, err := OpenStore(ctx, cfg.DB, log)
	if err != nil {
		log.Error().Err(err).Str("db", cfg.DB).Msg("cannot open store")
		return nil, nil, err
	}
	log.Debug().Str("db", cfg.DB).Str("prices", cfg.Prices).Msg("book opened")
	book = carteira.NewBook(store, cotahist.NewFile(cfg.Prices), log)
	return book, func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("cannot close store")
		}
	}, nil
}
