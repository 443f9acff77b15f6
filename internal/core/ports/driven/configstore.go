package driven

// Settings holds the resolved application configuration.
type Settings struct {
	// ServerURL is the base URL of the validation server.
	ServerURL string

	// RequestTimeoutSeconds bounds each remote call. Zero means the
	// client default.
	RequestTimeoutSeconds int

	// DropDir is the watched inbox directory. Files placed there are
	// treated as dropped attachments.
	DropDir string

	// DataDir holds local state such as the submission history
	// database.
	DataDir string
}

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files).
type ConfigStore interface {
	// Settings returns the current configuration with defaults applied.
	Settings() Settings

	// Set stores a configuration value by dotted key (e.g. "server.url")
	// and persists immediately.
	Set(key string, value string) error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
