package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/sill/internal/cli"
	"github.com/aretw0/sill/internal/logging"
	httpAdapter "github.com/aretw0/sill/pkg/adapters/http"
	"github.com/aretw0/sill/pkg/schemafile"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the environment report server",
	Long: `Serves the environment check over HTTP: /healthz for liveness, /readyz
gated on a passing check, /v1/report for the full classification and
/metrics for Prometheus.`,
	Run: func(cmd *cobra.Command, args []string) {
		schemaPath, _ := cmd.Flags().GetString("schema")
		port, _ := cmd.Flags().GetString("port")
		envFiles, _ := cmd.Flags().GetStringArray("env-file")
		noEnviron, _ := cmd.Flags().GetBool("no-environ")

		s, err := schemafile.Load(schemaPath)
		if err != nil {
			fmt.Printf("Error loading schema: %v\n", err)
			os.Exit(1)
		}
		src, err := cli.BuildSource(envFiles, noEnviron)
		if err != nil {
			fmt.Printf("Error assembling sources: %v\n", err)
			os.Exit(1)
		}

		server := httpAdapter.NewServer(s, src,
			httpAdapter.WithLogger(logging.NewJSON(slog.LevelInfo)),
		)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: server.Handler(),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Sill Report Server on %s\n", srv.Addr)
			fmt.Printf("Serving checks for schema: %s\n", schemaPath)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Sill Report Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().StringArray("env-file", nil, "Env file to layer under the process environment (repeatable)")
	serveCmd.Flags().Bool("no-environ", false, "Ignore the process environment")
}
