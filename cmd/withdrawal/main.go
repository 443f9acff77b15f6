// Command withdrawal is the course withdrawal request client.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/uot-apps/withdrawal-cli/internal/adapters/driven/config/file"
	"github.com/uot-apps/withdrawal-cli/internal/adapters/driven/gateway/httpapi"
	"github.com/uot-apps/withdrawal-cli/internal/adapters/driven/storage/memory"
	"github.com/uot-apps/withdrawal-cli/internal/adapters/driven/storage/sqlite"
	"github.com/uot-apps/withdrawal-cli/internal/adapters/driving/cli"
	"github.com/uot-apps/withdrawal-cli/internal/core/ports/driving"
	"github.com/uot-apps/withdrawal-cli/internal/core/services"
	"github.com/uot-apps/withdrawal-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)

	store, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading configuration: %v\n", err)
		os.Exit(1)
	}
	cli.SetConfigStore(store)

	cli.SetWorkflowFactory(func(baseURL string, timeout time.Duration) (driving.WorkflowService, error) {
		gateway := httpapi.NewClient(baseURL,
			httpapi.WithHTTPClient(&http.Client{Timeout: timeout}))

		// History falls back to an in-memory store for the session when
		// the on-disk store cannot be opened.
		history, err := sqlite.NewHistoryStore(store.Settings().DataDir)
		if err != nil {
			logger.Warn("history store unavailable: %v", err)
			return services.NewWorkflowService(gateway, memory.NewHistoryStore()), nil
		}
		return services.NewWorkflowService(gateway, history), nil
	})

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
