package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"college-assist/internal/bootstrap"
	"college-assist/internal/config"
	"college-assist/internal/platform/mysql"
	"college-assist/internal/repository"
	"college-assist/internal/seed"
	"college-assist/internal/snapshot"
)

// Seeds the database from the snapshot file (or built-in defaults) and can
// export the live content back out as a snapshot.
func main() {
	exportOnly := flag.Bool("export", false, "write a snapshot of the live database and exit")
	skipSnapshot := flag.Bool("skip-snapshot", false, "seed without re-exporting the snapshot afterwards")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config failed")
	}

	db, err := mysql.New(context.Background(), cfg.MySQLDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("connect mysql failed")
	}
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}
	store := repository.NewStore(db)

	if *exportOnly {
		export(store, cfg.Snapshot.Path)
		return
	}

	doc := snapshot.ReadFile(cfg.Snapshot.Path)
	if err := seed.NewSeeder(store).Run(doc); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Msg("seed complete")

	// Re-export so the snapshot reflects what actually landed, defaults
	// included.
	if !*skipSnapshot {
		export(store, cfg.Snapshot.Path)
	}
}

func export(store *repository.Store, path string) {
	if _, err := snapshot.NewSyncer(store, path, nil).Export(); err != nil {
		log.Fatal().Err(err).Msg("write snapshot failed")
	}
	log.Info().Str("path", path).Msg("snapshot written")
}
