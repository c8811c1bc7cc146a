package core

// RuntimeConfig contains settings the CLI passes to a front-end at startup.
type RuntimeConfig struct {
	TickRate int   // Loop iterations per second (default 60)
	Seed     int64 // Shuffle seed; 0 means seed from the current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0,
	}
}
