package main

import (
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/lazharichir/blackjack/cli"
	"github.com/lazharichir/blackjack/domain/events"
	"github.com/lazharichir/blackjack/server"
)

func main() {
	// .env (if present) seeds the environment; flags take precedence.
	_ = godotenv.Load()

	serve := flag.Bool("serve", false, "run the card-dealing JSON service instead of the table")
	port := flag.String("port", envOr("BLACKJACK_PORT", "7777"), "card service port")
	decks := flag.Int("decks", 6, "decks in the shoe")
	cutoff := flag.Int("cutoff", 52, "cards withheld under the plastic card")
	balance := flag.Int64("balance", 100_000, "starting balance in cents")
	debug := flag.Bool("debug", false, "dump round state after each round")
	flag.Parse()

	log := newLogger(*debug)

	if *serve {
		srv := server.NewServer(server.Config{Port: *port}, log)
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("card service failed")
		}
		return
	}

	table := cli.New(cli.Config{
		Decks:   *decks,
		Cutoff:  *cutoff,
		Balance: *balance,
		Debug:   *debug,
	}, log, events.NewInMemoryEventStore())

	if err := table.Run(); err != nil {
		log.Fatal().Err(err).Msg("table closed with an error")
	}
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
