package stt

// Config captures runtime settings for transcription.
type Config struct {
	// Model is the WhisperX model to use (e.g. "medium", "large-v3").
	Model string
	// Language forces the transcription language; empty means autodetect.
	Language string
	// CUDAEnabled selects GPU inference.
	CUDAEnabled bool
	// BatchSize is the inference batch size passed through to WhisperX.
	BatchSize int
}

// DefaultConfig matches the quality/speed balance used for spoken-word
// recordings a few minutes long.
func DefaultConfig() Config {
	return Config{
		Model:     "medium",
		Language:  "fr",
		BatchSize: 16,
	}
}

// Tool invocation constants.
const (
	UVXCommand   = "uvx"
	PypiIndexURL = "https://pypi.org/simple"
	CUDAIndexURL = "https://download.pytorch.org/whl/cu128"

	cpuDevice      = "cpu"
	cudaDevice     = "cuda"
	cpuComputeType = "int8"
)
