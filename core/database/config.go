package database

// Config holds the connection settings for one database endpoint.
// The compare command carries two of these, one per side.
type Config struct {
	// Label names the endpoint in reports (e.g. "production", "staging").
	Label string `mapstructure:"label" default:""`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the schema whose catalog is compared.
	Name string `mapstructure:"name" default:""`
	// TimeoutSeconds bounds connection setup and per-query I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// DisplayLabel returns the label, falling back to host:port/name.
func (c Config) DisplayLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Address()
}
