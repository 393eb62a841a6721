// Command solvent is a terminal client for an AI coding-problem solver.
//
// Usage:
//
//	solvent [flags]
//
// Flags:
//
//	-config string      Path to config file (default ~/.solvent/config.toml)
//	-base-url string    Backend base URL (overrides config)
//	-mode string        Execution mode: fast, verified, comprehensive
//	-difficulty string  Problem difficulty: easy, medium, hard
//	-image string       Path to a problem screenshot to extract text from
//	-check              Print backend health and exit
package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/solventhq/solvent"
	"github.com/solventhq/solvent/api"
	bt "github.com/solventhq/solvent/bubbletea"
	"github.com/solventhq/solvent/config"
	"github.com/solventhq/solvent/history"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "solvent: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "Path to config file")
		baseURL    = flag.String("base-url", "", "Backend base URL (overrides config)")
		mode       = flag.String("mode", "", "Execution mode: fast, verified, comprehensive")
		difficulty = flag.String("difficulty", "", "Problem difficulty: easy, medium, hard")
		imagePath  = flag.String("image", "", "Path to a problem screenshot to extract text from")
		check      = flag.Bool("check", false, "Print backend health and exit")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}

	backend := api.New(
		api.WithBaseURL(cfg.BaseURL),
		api.WithRetries(cfg.MaxRetries),
	)

	if *check {
		h, err := backend.Health(ctx)
		if err != nil {
			return fmt.Errorf("health: %w", err)
		}
		fmt.Printf("%s (version %s)\n", h.Status, h.Version)
		return nil
	}

	store := solvent.NewStore()
	if err := applyFlags(store, *mode, *difficulty); err != nil {
		return err
	}

	if *imagePath != "" {
		if err := extractProblem(ctx, backend, store, *imagePath); err != nil {
			return err
		}
	}

	controller := solvent.NewController(backend, store,
		solvent.WithStreamTimeout(cfg.StreamTimeout()))
	defer controller.Cancel()

	theme := solvent.DefaultTheme()
	tuiModel := bt.New(store, controller, backend, theme)

	if err := bt.Run(ctx, tuiModel); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}

	return saveHistory(cfg, store.Snapshot())
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return config.Config{}, err
		}
		path = p
	}
	return config.Load(path)
}

func applyFlags(store *solvent.Store, mode, difficulty string) error {
	if mode != "" {
		m := solvent.ExecutionMode(mode)
		switch m {
		case solvent.ModeFast, solvent.ModeVerified, solvent.ModeComprehensive:
			store.SetMode(m)
		default:
			return fmt.Errorf("unknown mode %q", mode)
		}
	}
	if difficulty != "" {
		d := solvent.Difficulty(difficulty)
		switch d {
		case solvent.DifficultyEasy, solvent.DifficultyMedium, solvent.DifficultyHard:
			store.SetDifficulty(d)
		default:
			return fmt.Errorf("unknown difficulty %q", difficulty)
		}
	}
	return nil
}

// extractProblem runs OCR on a screenshot and pre-fills the problem
// statement.
func extractProblem(ctx context.Context, backend solvent.Backend, store *solvent.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	req := solvent.OCRRequest{
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		ImageType:   imageType(path),
	}
	store.SetExtracting(true)
	resp, err := backend.OCR(ctx, req)
	store.SetExtracting(false)
	if err != nil {
		return fmt.Errorf("extract problem text: %w", err)
	}
	store.SetProblem(resp.ExtractedText, "", "")
	return nil
}

func imageType(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "png"
	}
	return ext
}

// saveHistory persists the session if a solution was produced.
func saveHistory(cfg config.Config, snap solvent.Snapshot) error {
	if snap.StreamingText == "" && snap.Result == nil {
		return nil
	}
	dir, err := cfg.HistoryPath()
	if err != nil {
		return err
	}
	e := history.NewEntry()
	e.ProblemText = snap.ProblemText
	e.Difficulty = snap.Difficulty
	e.Mode = snap.Mode
	e.Solution = snap.StreamingText
	e.Result = snap.Result
	if snap.Simple != nil {
		e.Simple = &snap.Simple.Data
	}
	e.CodeNotes = snap.CodeNotes
	e.Execution = snap.Execution
	if err := history.NewStore(dir).Save(e); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Saved to %s\n", filepath.Join(dir, e.ID+".json"))
	return nil
}
