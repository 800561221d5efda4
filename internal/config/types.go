package config

// Run-configuration types. Configurations generated by the connection
// flow itself carry TypeConnection; TypeLegacyDebug is the type the
// pre-rename releases wrote. Both are filtered out when offering
// configurations to launch alongside a connection, so a generated
// configuration can never be chained back into the flow.
const (
	TypeConnection  = "kbridge-connection"
	TypeLegacyDebug = "kbridge-remote-debug"
)

// RunConfiguration is one persisted local run configuration.
type RunConfiguration struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type,omitempty"`
	Command   string `yaml:"command,omitempty"`
	Target    string `yaml:"target,omitempty"`
	Namespace string `yaml:"namespace,omitempty"`
	Port      int    `yaml:"port,omitempty"`
}

// GeneratedByConnect reports whether this configuration is itself a
// product of the connection flow or a recognized legacy variant.
func (r RunConfiguration) GeneratedByConnect() bool {
	return r.Type == TypeConnection || r.Type == TypeLegacyDebug
}

// File is the on-disk shape of the kbridge configurations file.
type File struct {
	Configurations []RunConfiguration `yaml:"configurations"`
}
