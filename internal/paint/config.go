package paint

// Config controls a painting.
type Config struct {
	Size int
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Size: 256, Seed: 1}
}
