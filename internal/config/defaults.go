package config

const (
	defaultDataFile   = "CDInventory.dat"
	defaultTableStyle = "rounded"
	defaultLogFormat  = "console"
	defaultLogLevel   = "warn"
)

// Default returns a Config populated with repository defaults. The data file
// is left empty so normalization can consult CDINVENTORY_DATA_FILE first.
func Default() Config {
	return Config{
		Display: Display{
			TableStyle: defaultTableStyle,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
