package ingest

// Config holds configuration for the migration pipeline.
type Config struct {
	// InputDir is the directory scanned for vendor export files.
	InputDir string `mapstructure:"input_dir" default:"./exports"`
	// OutputFile is where the serialized aggregate is written.
	OutputFile string `mapstructure:"output_file" default:"output.os"`
	// Persist enables the database sink for finished runs.
	Persist bool `mapstructure:"persist" default:"false"`
}
