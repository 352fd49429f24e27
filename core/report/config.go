package report

// Config holds configuration for report output.
type Config struct {
	// OutputDir is the directory report artifacts are written to.
	OutputDir string `mapstructure:"output_dir" default:"reports"`
}
