package main

import (
	"flag"
	"image"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"emblem/internal/canvas"
	"emblem/internal/config"
	"emblem/internal/emblem"
	"emblem/internal/logging"
	"emblem/internal/shapes"
	"emblem/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "TOML or YAML config file")
	logoPath := flag.String("logo", "", "logo image drawn by the warp renderer")
	renderer := flag.String("renderer", "", "warp or stretch")
	logFile := flag.String("log", "", "write logs to this file")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *logoPath != "" {
		cfg.LogoPath = *logoPath
	}
	if *renderer != "" {
		cfg.Renderer = *renderer
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	cfg.Debug = cfg.Debug || *debug
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// stdout belongs to the terminal UI
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "emblem")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logging.SetLogger(logging.New(f, cfg.Debug))
	}

	reg, err := shapes.New()
	if err != nil {
		log.Fatal(err)
	}
	if reg, err = reg.With(cfg.Shapes...); err != nil {
		log.Fatal(err)
	}

	var logo image.Image
	if cfg.LogoPath != "" {
		if logo, err = canvas.LoadImage(cfg.LogoPath); err != nil {
			// the emblem itself stands in for a missing logo
			logging.Logger().Warn("logo not loaded", "path", cfg.LogoPath, "err", err)
		}
	}

	r, err := emblem.New(cfg, reg, logo)
	if err != nil {
		log.Fatal(err)
	}
	logging.Logger().Info("starting", "renderer", r.Name(), "shapes", reg.Len())

	m := tui.New(cfg, reg, r, logo)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
