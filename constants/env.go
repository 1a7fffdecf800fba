package constants

const (
	AppName = "energy-import"

	EnvPrefix   = "ENERGY_IMPORT"
	EnvLogLevel = "ENERGY_IMPORT_LOG_LEVEL"
	EnvConfig   = "ENERGY_IMPORT_CONFIG"

	DefaultConfigFile = "energy_import.hcl"
	DefaultOutputDir  = "data/clean"
)
