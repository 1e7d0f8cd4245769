package catalog

// Source values for Config.Source.
const (
	SourceFile    = "file"
	SourceStorage = "storage"
)

// Config holds catalog discovery configuration.
type Config struct {
	Source       string `mapstructure:"source" default:"file"`
	Path         string `mapstructure:"path" default:"enums"`
	Prefix       string `mapstructure:"prefix" default:"catalog/enums/"`
	StrictValues bool   `mapstructure:"strict_values" default:"false"`
}
