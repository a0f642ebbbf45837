package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/akshay-bhagdikar/Webpage-topics/internal/fetch"
	"github.com/akshay-bhagdikar/Webpage-topics/internal/htmltext"
	"github.com/akshay-bhagdikar/Webpage-topics/internal/lingo"
	"github.com/akshay-bhagdikar/Webpage-topics/internal/topics"
)

// App wires the fetch, extract, and topic stages for one run.
type App struct {
	cfg    Config
	client *fetch.Client
	tagger lingo.Tagger
	out    io.Writer
}

// New builds the application, loading the linguistic capability up front
// so a broken dictionary fails the run before any network traffic.
func New(cfg Config) (*App, error) {
	tagger, err := lingo.NewProse()
	if err != nil {
		return nil, fmt.Errorf("init linguistic adapter: %w", err)
	}
	client := &fetch.Client{
		UserAgent:         cfg.UserAgent,
		PerRequestTimeout: cfg.Timeout,
		MaxAttempts:       cfg.MaxAttempts,
	}
	return &App{cfg: cfg, client: client, tagger: tagger, out: os.Stdout}, nil
}

// reportRow is one ranked result as printed and rendered to PDF.
type reportRow struct {
	Rank  int
	Topic string
	Score string
}

// Run fetches the page, derives its content units, scores topics with the
// configured approach, prints the ranking, and optionally renders the PDF
// report.
func (a *App) Run(ctx context.Context) error {
	body, contentType, err := a.client.Get(ctx, a.cfg.URL)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", a.cfg.URL, err)
	}
	log.Debug().Int("bytes", len(body)).Str("contentType", contentType).Msg("page fetched")

	units, err := htmltext.FromHTML(body, contentType)
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}
	log.Info().Int("units", len(units)).Msg("content units extracted")

	extractor := topics.New(units, a.tagger)

	var rows []reportRow
	switch a.cfg.Approach {
	case ApproachPOS:
		log.Info().Int("n", a.cfg.N).Int("number", a.cfg.Number).
			Msg("ranking topics by part-of-speech pattern frequency")
		ranked, err := extractor.PatternTopics(a.cfg.N, a.cfg.Number)
		if err != nil {
			return fmt.Errorf("score topics: %w", err)
		}
		for i, t := range ranked {
			rows = append(rows, reportRow{Rank: i + 1, Topic: t.Topic, Score: fmt.Sprintf("%d", t.Score)})
		}
	default:
		log.Info().Int("n", a.cfg.N).Int("number", a.cfg.Number).
			Msg("ranking topics by pointwise mutual information")
		ranked := extractor.PMITopics(a.cfg.N, a.cfg.Number)
		for i, t := range ranked {
			rows = append(rows, reportRow{Rank: i + 1, Topic: t.Topic, Score: fmt.Sprintf("%.4f", t.Score)})
		}
	}

	if len(rows) == 0 {
		log.Warn().Msg("no qualifying topics found")
	}
	for _, r := range rows {
		fmt.Fprintf(a.out, "%d. %s\t%s\n", r.Rank, r.Topic, r.Score)
	}

	if a.cfg.OutputPDF != "" {
		if err := writeTopicsPDF(a.cfg, rows); err != nil {
			return fmt.Errorf("write pdf report: %w", err)
		}
		log.Info().Str("path", a.cfg.OutputPDF).Msg("PDF report written")
	}
	return nil
}
