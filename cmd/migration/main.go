package main

import (
	"context"
	"flag"

	"github.com/rs/zerolog/log"

	"github.com/GulizarHanum/Birthday/internal/config"
	"github.com/GulizarHanum/Birthday/internal/logging"
	"github.com/GulizarHanum/Birthday/internal/repository"
)

// Usage example on the command line:
// > DBHOST=localhost:3306 DBUSER=dirk DBPWD=bullo92 go run main.go
// > DBHOST=localhost:3306 DBUSER=dirk DBPWD=bullo92 go run main.go -down
func main() {
	configPath := flag.String("config", "", "optional yaml configuration file")
	down := flag.Bool("down", false, "roll back all migrations instead of applying them")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	sqlDB, err := repository.OpenMySQL(context.Background(), cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to database")
	}
	defer sqlDB.Close()

	n, err := repository.Migrate(sqlDB, !*down)
	if err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Int("count", n).Bool("down", *down).Msg("migrations executed")
}
