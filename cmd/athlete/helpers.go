package athlete

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mvpathlete/athlete/internal/app"
	"github.com/mvpathlete/athlete/internal/catalog"
	"github.com/mvpathlete/athlete/internal/config"
	"github.com/mvpathlete/athlete/internal/db"
	"github.com/mvpathlete/athlete/internal/logger"
	"github.com/mvpathlete/athlete/internal/service"
	"github.com/mvpathlete/athlete/internal/store"
)

// session is what tracker commands run against: an open, migrated database
// and the ledgers loaded from it.
type session struct {
	db      *sql.DB
	cfg     *config.Config
	log     zerolog.Logger
	tracker *service.Tracker
	holder  *catalog.Holder
	source  string
}

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func withTracker(cmd *cobra.Command, run func(*session) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	log := logger.New(level, cfg.LogFormat, cmd.ErrOrStderr())

	return withDB(func(sqldb *sql.DB) error {
		fallback, err := app.DefaultCatalogPath()
		if err != nil {
			return err
		}
		override := catalogSource
		if override == "" {
			override = cfg.CatalogSource
		}
		source, err := service.ResolveCatalogSource(sqldb, override, fallback)
		if err != nil {
			return err
		}
		holder := catalog.NewHolder()
		s := &session{
			db:      sqldb,
			cfg:     cfg,
			log:     log,
			holder:  holder,
			source:  source,
			tracker: service.NewTracker(store.NewSQLite(sqldb), holder, log),
		}
		return run(s)
	})
}

// waitCatalog starts the nutrition table load and waits up to the configured
// timeout. The tracker keeps working with an empty table when the load fails
// or is still running.
func (s *session) waitCatalog(ctx context.Context) catalog.State {
	loader := catalog.NewLoader()
	s.holder.Start(ctx, func(ctx context.Context) (*catalog.Catalog, error) {
		return loader.Load(ctx, s.source)
	})
	if s.cfg.CatalogTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.CatalogTimeout)
		defer cancel()
	}
	state := s.holder.Wait(ctx)
	switch state {
	case catalog.StateFailed:
		s.log.Warn().Err(s.holder.Err()).Str("source", s.source).Msg("nutrition catalog unavailable")
	case catalog.StateLoading:
		s.log.Warn().Str("source", s.source).Dur("timeout", s.cfg.CatalogTimeout).Msg("nutrition catalog still loading; continuing without it")
	}
	return state
}

func (s *session) suggestLimit(flagValue int) (int, error) {
	if flagValue > 0 {
		return flagValue, nil
	}
	return service.ResolveSuggestLimit(s.db, s.cfg.SuggestLimit)
}

// reportUnsaved lets a command still print its result after ErrStorage, but
// tells the user on stderr that nothing was written. Other errors pass
// through.
func reportUnsaved(cmd *cobra.Command, err error) error {
	if errors.Is(err, service.ErrStorage) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: changes were NOT saved: %v\n", err)
		return nil
	}
	return err
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return app.DefaultDBPath()
}

func limitItems[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
