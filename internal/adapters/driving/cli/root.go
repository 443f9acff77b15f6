// Package cli implements the command-line interface for the withdrawal
// client.
package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/uot-apps/withdrawal-cli/internal/core/ports/driven"
	"github.com/uot-apps/withdrawal-cli/internal/core/ports/driving"
	"github.com/uot-apps/withdrawal-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// defaultServerURL is used when neither the --server flag nor the
// configuration file names a validation service.
const defaultServerURL = "http://localhost:5000"

var (
	verboseFlag bool
	serverFlag  string
)

var (
	// workflowService, when set, is used directly by all commands. Tests
	// inject mocks here.
	workflowService driving.WorkflowService

	// workflowFactory builds the workflow service once the server URL is
	// resolved from flags and configuration.
	workflowFactory func(baseURL string, timeout time.Duration) (driving.WorkflowService, error)

	// configStore provides persisted settings. May be nil, in which case
	// built-in defaults apply.
	configStore driven.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "withdrawal",
	Short: "Course withdrawal request client",
	Long: `Client for the university course withdrawal service.

Parses an academic transcript, fills in the withdrawal request form and
submits it for eligibility validation. Run without a subcommand to
launch the interactive terminal UI.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "validation service base URL (overrides configuration)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetWorkflowService injects a ready-made workflow service. It takes
// precedence over the factory.
func SetWorkflowService(s driving.WorkflowService) {
	workflowService = s
}

// SetWorkflowFactory installs the builder used to construct the
// workflow service after flag parsing.
func SetWorkflowFactory(f func(baseURL string, timeout time.Duration) (driving.WorkflowService, error)) {
	workflowFactory = f
}

// SetConfigStore injects the persisted settings store.
func SetConfigStore(s driven.ConfigStore) {
	configStore = s
}

// serverURL resolves the validation service base URL. The --server
// flag wins over configuration; configuration wins over the default.
func serverURL() string {
	if serverFlag != "" {
		return serverFlag
	}
	if configStore != nil {
		if url := configStore.Settings().ServerURL; url != "" {
			return url
		}
	}
	return defaultServerURL
}

// requestTimeout resolves the per-request timeout from configuration.
func requestTimeout() time.Duration {
	if configStore != nil {
		if secs := configStore.Settings().RequestTimeoutSeconds; secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 30 * time.Second
}

// workflow returns the workflow service for the current invocation.
func workflow() (driving.WorkflowService, error) {
	if workflowService != nil {
		return workflowService, nil
	}
	if workflowFactory == nil {
		return nil, errors.New("workflow service not configured")
	}
	return workflowFactory(serverURL(), requestTimeout())
}
