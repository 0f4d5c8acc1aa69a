package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Sumandeep-Kaur/Hotel-Hunt/api"
	appconfig "github.com/Sumandeep-Kaur/Hotel-Hunt/config"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/engine"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/logger"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/metrics"
)

func main() {
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		port       = flag.Int("port", 0, "Port to run the server on (overrides config)")
		dataDir    = flag.String("data-dir", "", "Directory holding the city CSV files (overrides config)")
		configPath = flag.String("config", "", "Path to a TOML config file")
	)

	flag.Parse()

	if *help {
		fmt.Printf("Hotel Hunt - hotel search with autocomplete and spell checking\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                          # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000              # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --data-dir ./data        # Load hotel data from ./data\n", os.Args[0])
		return
	}

	if *version {
		fmt.Printf("Hotel Hunt v1.0.0\n")
		return
	}

	lg := logger.New("main")

	cfg := appconfig.Default()
	if *configPath != "" {
		loaded, err := appconfig.Load(*configPath)
		if err != nil {
			lg.Fatal("failed to load config", "path", *configPath, "error", err)
		}
		cfg = loaded
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *dataDir != "" {
		cfg.Data.Dir = *dataDir
	}
	if err := cfg.Validate(); err != nil {
		lg.Fatal("invalid configuration", "error", err)
	}

	m := metrics.New()

	lg.Info("building indexes", "data_dir", cfg.Data.Dir)
	eng := engine.New(cfg)
	if err := eng.Build(context.Background(), m); err != nil {
		lg.Fatal("failed to build indexes", "error", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, eng, cfg, m)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	lg.Info("starting server", "addr", addr)
	if err := router.Run(addr); err != nil {
		lg.Fatal("server exited", "error", err)
	}
}
