package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/akshay-bhagdikar/Webpage-topics/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		n           int
		approach    string
		number      int
		configPath  string
		outputPDF   string
		userAgent   string
		timeout     time.Duration
		maxAttempts int
		verbose     bool
	)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <url>\n\nTopic extraction from a webpage URL.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.IntVar(&n, "n", app.DefaultN, "Number of words per topic (n in n-grams)")
	flag.StringVar(&approach, "approach", app.ApproachPMI, "Scoring approach: pmi (pointwise mutual information) or pos (part-of-speech filtering)")
	flag.IntVar(&number, "number", app.DefaultNumber, "Number of top topics to display")
	flag.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	flag.StringVar(&outputPDF, "output.pdf", "", "Optional path to write a PDF report")
	flag.StringVar(&userAgent, "ua", "", "Custom User-Agent for the page fetch")
	flag.DurationVar(&timeout, "timeout", 0, "Per-request fetch timeout (default 10s)")
	flag.IntVar(&maxAttempts, "attempts", 0, "Fetch attempts including the first (default 1)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		URL:         flag.Arg(0),
		N:           n,
		Approach:    approach,
		Number:      number,
		OutputPDF:   outputPDF,
		UserAgent:   userAgent,
		Timeout:     timeout,
		MaxAttempts: maxAttempts,
		Verbose:     verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(2)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}
