package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"podesk/internal/config"
	"podesk/internal/server"
	"podesk/internal/util"
	"podesk/internal/window"
)

var (
	port        = flag.Int("port", 0, "server port (config.toml wins when it sets one explicitly)")
	devMode     = flag.Bool("dev", false, "development mode: verbose logging, no native window")
	browserMode = flag.Bool("browser", false, "open the UI in the default browser instead of a native window")
	dataDir     = flag.String("dataDir", "", "base directory for projects/ and vendors/ (overrides config)")
)

func main() {
	flag.Parse()

	cfg, info, err := config.LoadWithInfo()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config, using defaults: %v\n", err)
		cfg = config.Default()
		info = config.LoadInfo{}
	}

	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		config.ApplyDataDir(cfg, *dataDir)
	}

	var out zerolog.Logger
	if cfg.Server.DevMode {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel)
	} else {
		out = zerolog.New(os.Stderr).Level(zerolog.InfoLevel)
	}
	log := out.With().Timestamp().Logger()

	projectsDir, vendorsDir, err := config.EnsureDataDirs(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create data directories")
	}
	log.Info().Str("projects", projectsDir).Str("vendors", vendorsDir).Msg("data directories ready")

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.Server.Port)
	url := fmt.Sprintf("http://%s", addr)

	detached := cfg.Server.DevMode || *browserMode

	var host window.Host
	var view *window.Webview
	if detached {
		host = window.NewDetached(func() {
			log.Info().Msg("shutting down")
			os.Exit(0)
		})
	} else {
		view = window.NewWebview("Purchase", url, cfg.Window.Width, cfg.Window.Height, false, log)
		host = view
	}

	srv := server.New(cfg, projectsDir, vendorsDir, host, log)

	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.Run(addr); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	if detached {
		if cfg.Server.DevMode {
			log.Info().Str("url", url).Msg("development mode, open the URL manually")
		} else if err := util.OpenBrowserWithFallback(url); err != nil {
			log.Warn().Err(err).Str("url", url).Msg("could not open browser, open the URL manually")
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("shutting down")
		return
	}

	// The webview event loop must own the main goroutine.
	view.Run()
	log.Info().Msg("window closed, shutting down")
}
