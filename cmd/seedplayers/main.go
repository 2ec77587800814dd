// Command seedplayers loads a player catalog into the players table, from
// either a local JSON export or a remote catalog provider. Existing rows are
// updated in place so the seed is re-runnable.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/draftroomhq/draftroom/internal/catalog"
	"github.com/draftroomhq/draftroom/internal/config"
)

const upsertPlayerSQL = `
INSERT INTO players (id, name, position, rank)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET name = $2, position = $3, rank = $4`

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	file := flag.String("file", "players.json", "path to the player catalog JSON")
	url := flag.String("url", "", "base URL of a remote catalog provider; overrides -file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	var data []byte
	if *url != "" {
		client := catalog.NewClient(*url)
		if key := os.Getenv("CATALOG_API_KEY"); key != "" {
			client.SetHeader("X-Api-Key", key)
		}
		data, err = client.Get("/players")
		if err != nil {
			log.Fatal().Err(err).Str("url", *url).Msg("failed to fetch catalog")
		}
	} else {
		data, err = os.ReadFile(*file)
		if err != nil {
			log.Fatal().Err(err).Str("file", *file).Msg("failed to read catalog file")
		}
	}
	var players []catalog.Player
	if err := json.Unmarshal(data, &players); err != nil {
		log.Fatal().Err(err).Msg("failed to parse catalog")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	seeded := 0
	for _, p := range players {
		id, err := uuid.Parse(p.ID)
		if err != nil {
			log.Warn().Str("id", p.ID).Str("name", p.Name).Msg("skipping player with invalid id")
			continue
		}
		if _, err := pool.Exec(ctx, upsertPlayerSQL, id, p.Name, p.Position, p.Rank); err != nil {
			log.Fatal().Err(err).Str("name", p.Name).Msg("failed to upsert player")
		}
		seeded++
	}

	source := *file
	if *url != "" {
		source = *url
	}
	log.Info().Int("players", seeded).Str("source", source).Msg("catalog seeded")
}
