package store

// Config holds FileStore initialization parameters.
type Config struct {
	Directory string `json:"directory,omitempty"` // Local backing directory; empty leaves the store disabled.
}

// DefaultConfig returns the default store configuration (disabled).
func DefaultConfig() Config {
	return Config{}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Directory != "" {
		c.Directory = source.Directory
	}
}

// NewStore creates a FileStore from configuration.
func NewStore(cfg *Config, opts ...Option) *FileStore {
	return New(cfg.Directory, opts...)
}
