package cmd

// Config carries the process configuration resolved from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	SweepIntervalSeconds int
	MaxCounterDepth      int
	DuplicatePolicy      string
	NotifierBufferSize   int
}
