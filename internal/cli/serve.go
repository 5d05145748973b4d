package cli

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	"finance-engine/internal/config"
	"finance-engine/internal/handler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the projection HTTP service",
	Long: `Start the calculation API:

  POST /v1/projection   one parameter set -> year-by-year snapshots
  POST /v1/scenarios    named parameter sets -> independent projections
  GET  /health          liveness
  GET  /metrics         Prometheus exposition`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	// Container platforms inject PORT; it wins over the config file.
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	h := handler.New(cfg.Projection.HorizonYears)
	srv := &fasthttp.Server{
		Handler:      h.Handle,
		ReadTimeout:  config.ParseTimeout(cfg.Server.ReadTimeout, 30*time.Second),
		WriteTimeout: config.ParseTimeout(cfg.Server.WriteTimeout, 30*time.Second),
	}

	log.Printf("Finance engine listening on %s", addr)
	return srv.ListenAndServe(addr)
}
