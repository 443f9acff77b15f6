package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage client configuration",
	Long: `Manages the persisted client configuration.

Available keys:
  server.url              validation service base URL
  server.timeout_seconds  per-request timeout
  files.drop_dir          directory watched for dropped files
  files.data_dir          directory for local data`,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the effective configuration",
	RunE:  runConfigList,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("configuration store not available")
	}
	settings := configStore.Settings()
	cmd.Printf("server.url              %s\n", settings.ServerURL)
	cmd.Printf("server.timeout_seconds  %d\n", settings.RequestTimeoutSeconds)
	cmd.Printf("files.drop_dir          %s\n", settings.DropDir)
	cmd.Printf("files.data_dir          %s\n", settings.DataDir)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("configuration store not available")
	}
	if err := configStore.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("%s set\n", args[0])
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("configuration store not available")
	}
	cmd.Println(configStore.Path())
	return nil
}
