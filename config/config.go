package config

// DefaultBufferSize is the initial size of the reader working buffer.
const DefaultBufferSize = 64 * 1024

// Config holds the settings shared by readers, workers and the command line.
type Config struct {
	Cpu, MaxBuf, Reads int
	// BufferSize is the initial working buffer size of a reader. The buffer
	// grows when a single line does not fit.
	BufferSize int
	// AllowUnterminated accepts a final line lacking its line feed. When
	// false such a line is reported as an incomplete record.
	AllowUnterminated bool
	// SkipHeaders drops blank lines, '#' comments and track/browser lines.
	SkipHeaders bool
	// ReuseRecord makes a reader return the same Record on every read.
	ReuseRecord bool
}

// NewConfig returns a Config with the given worker settings and default reader settings.
func NewConfig(cpu, maxBuf, reads int) *Config {
	return &Config{
		Cpu:        cpu,
		MaxBuf:     maxBuf,
		Reads:      reads,
		BufferSize: DefaultBufferSize,
	}
}

// Default returns a single worker Config reading all records.
func Default() *Config {
	return NewConfig(1, 1000, -1)
}
