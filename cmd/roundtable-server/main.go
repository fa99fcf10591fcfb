// Command roundtable-server is the HTTP driver: it loads configuration,
// wires up logging and metrics, and serves internal/api's gin engine.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/roundtable/internal/api"
	"github.com/katalvlaran/roundtable/internal/applog"
	"github.com/katalvlaran/roundtable/internal/config"
	"github.com/katalvlaran/roundtable/internal/metrics"
)

func main() {
	cfgPath := flag.String("config", "", "config file (default is ./config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "roundtable-server: loading config:", err)
		os.Exit(1)
	}

	log := applog.New(applog.Config{
		Level:  applog.Level(cfg.Log.Level),
		Format: applog.Format(cfg.Log.Format),
	})

	reg := metrics.New()
	router := api.SetupRouter(log, reg, cfg.Server.AllowedOrigins, cfg.Solver.DefaultTimeLimitSeconds)

	log.InfoFields("starting roundtable-server", "addr", cfg.Server.Addr)
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Error("server exited", err)
		os.Exit(1)
	}
}
