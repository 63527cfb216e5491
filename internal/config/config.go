package config

import "fmt"

const (
	TranscriberWhisperCPP = "whisper-cpp"
	TranscriberOpenAI     = "openai"

	SummarizerGemini = "gemini"
	SummarizerOpenAI = "openai"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Server      ServerConfig      `yaml:"server"`
	Pipeline    PipelineConfig    `yaml:"pipeline"`
	Report      ReportConfig      `yaml:"report"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

// PathsConfig holds the on-disk layout. WorkDir receives uploads and
// extracted audio and is never cleaned.
type PathsConfig struct {
	WorkDir string `yaml:"work_dir"`
	Watch   string `yaml:"watch"`
	Output  string `yaml:"output"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type TranscriberConfig struct {
	Backend    string `yaml:"backend"`
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
	// DetectLanguage logs the detected transcript language.
	DetectLanguage bool `yaml:"detect_language"`
}

type SummarizerConfig struct {
	Backend string `yaml:"backend"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type OpenAIConfig struct {
	APIKey             string `yaml:"api_key"`
	ChatModel          string `yaml:"chat_model"`
	TranscriptionModel string `yaml:"transcription_model"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type PipelineConfig struct {
	// StrictTranscript aborts a run instead of summarizing a failed transcript.
	StrictTranscript bool `yaml:"strict_transcript"`
}

type ReportConfig struct {
	Docx bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Default returns a configuration with every optional field filled in.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.Paths.WorkDir == "" {
		c.Paths.WorkDir = "tempDir"
	}
	if c.Paths.Watch == "" {
		c.Paths.Watch = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Transcriber.Backend == "" {
		c.Transcriber.Backend = TranscriberWhisperCPP
	}
	if c.Transcriber.BinaryPath == "" {
		c.Transcriber.BinaryPath = "whisper-cli"
	}
	if c.Transcriber.Language == "" {
		c.Transcriber.Language = "en"
	}
	if c.Transcriber.Threads == 0 {
		c.Transcriber.Threads = 4
	}
	if c.Summarizer.Backend == "" {
		c.Summarizer.Backend = SummarizerGemini
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-1.5-flash"
	}
	if c.OpenAI.ChatModel == "" {
		c.OpenAI.ChatModel = "gpt-4o-mini"
	}
	if c.OpenAI.TranscriptionModel == "" {
		c.OpenAI.TranscriptionModel = "whisper-1"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}
}

// Validate fills defaults and checks that the selected backends have what they need.
func (c *Config) Validate() error {
	c.setDefaults()

	switch c.Transcriber.Backend {
	case TranscriberWhisperCPP:
		if c.Transcriber.ModelPath == "" {
			return fmt.Errorf("transcriber.model_path is required for backend %s", TranscriberWhisperCPP)
		}
	case TranscriberOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("openai.api_key is required for transcriber backend %s", TranscriberOpenAI)
		}
	default:
		return fmt.Errorf("transcriber.backend %q is not supported", c.Transcriber.Backend)
	}

	switch c.Summarizer.Backend {
	case SummarizerGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("gemini.api_key is required")
		}
	case SummarizerOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("openai.api_key is required for summarizer backend %s", SummarizerOpenAI)
		}
	default:
		return fmt.Errorf("summarizer.backend %q is not supported", c.Summarizer.Backend)
	}

	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}

	return nil
}
