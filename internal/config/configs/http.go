package configs

// HTTP holds the listen settings of the voting API server. Only the port
// is configurable; the server binds all interfaces.
type HTTP struct {
	// Port is the TCP port the voting API listens on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
