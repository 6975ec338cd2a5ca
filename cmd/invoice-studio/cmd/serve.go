package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-studio/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for invoice computation and export.

The API provides endpoints for:
  - POST /api/v1/invoice/compute - Derive line amounts and the total
  - POST /api/v1/invoice/render  - Rasterize the invoice page (PNG)
  - POST /api/v1/invoice/export  - Produce the PDF artifact
  - POST /api/v1/invoice/link    - Build the messaging deep link
  - GET  /health                 - Health check

Examples:
  # Start server on default port
  invoice-studio serve

  # Start on custom port in debug mode
  invoice-studio serve --address :9090 --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 2*time.Minute, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	config := &server.Config{
		Address:      serverAddr,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
	}

	srv := server.NewServer(config)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	fmt.Printf("Starting server on %s\n", serverAddr)
	return srv.Run()
}
