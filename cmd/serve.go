package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/pathfinder/internal/server"
)

var (
	addr        string
	allowOrigin string
	maxSize     int
	timeout     time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search engine over HTTP and WebSocket",
	Long: `serve starts an HTTP server exposing:

  GET  /healthz              liveness probe
  GET  /api/algorithms       supported algorithm names
  POST /api/search           run a scenario, returning the result and every step
  GET  /api/search/stream    WebSocket; send one scenario, receive steps as they happen

The listen address defaults to :$PORT, or :8080 when PORT is unset.`,
	Args:          cobra.NoArgs,
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: :$PORT or :8080)")
	serveCmd.Flags().StringVar(&allowOrigin, "allow-origin", "*", "CORS allowed origin")
	serveCmd.Flags().IntVar(&maxSize, "max-size", 100, "Largest grid a client may request")
	serveCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Maximum duration of one search")
}

func listenAddr() string {
	if addr != "" {
		return addr
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

func runServe(cmd *cobra.Command, args []string) error {
	setupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Options{
		AllowOrigin: allowOrigin,
		MaxSize:     maxSize,
		Timeout:     timeout,
	})
	return srv.ListenAndServe(ctx, listenAddr())
}
