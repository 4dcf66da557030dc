package configs

import "time"

// HTTP defines configuration for the dashboard server. Port 8050 is the
// port the dashboard has always been served on.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on.
	Port uint16 `env:"PORT" envDefault:"8050"`
	// Host restricts the listen address; empty listens on all interfaces.
	Host string `env:"HOST" envDefault:"127.0.0.1"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
