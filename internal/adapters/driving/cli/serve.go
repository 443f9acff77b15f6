package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/uot-apps/withdrawal-cli/internal/stubserver"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local validation service",
	Long: `Runs a local implementation of the transcript-parsing and
validation endpoints for development and testing. The service applies
the same eligibility rules as the production deployment and keeps
submitted requests in memory.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":5000", "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := stubserver.New()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(serveAddr)
	}()

	cmd.Printf("validation service listening on %s\n", serveAddr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	cmd.Println("validation service stopped")
	return nil
}
