package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port       string `mapstructure:"port"`
	UploadDir  string `mapstructure:"upload_dir"`
	ExportDir  string `mapstructure:"export_dir"`
	AIProvider string `mapstructure:"ai_provider"` // "openai" or "gemini"
	AIEndpoint string `mapstructure:"ai_endpoint"`
	Model      string `mapstructure:"model"`

	OpenAIAPIKey  string   `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKeys []string `mapstructure:"gemini_api_keys"`
	MongoURI      string   `mapstructure:"MONGODB_URI"`

	Summary PipelineConfig `mapstructure:"summary"`
	Answer  PipelineConfig `mapstructure:"answer"`
}

// PipelineConfig holds the chunking window and the per-chunk time budget for
// one inference task.
type PipelineConfig struct {
	MaxChunkSize   int `mapstructure:"max_chunk_size"`
	OverlapSize    int `mapstructure:"overlap_size"`
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("export_dir", "exports")
	v.SetDefault("ai_provider", "openai")
	// Summarization reads fewer characters per chunk than QA: the model is
	// slower and the window tighter. QA gets a wider window with more overlap
	// so candidate answer spans keep their surrounding context.
	v.SetDefault("summary.max_chunk_size", 500)
	v.SetDefault("summary.overlap_size", 50)
	v.SetDefault("summary.timeout_seconds", 60)
	v.SetDefault("answer.max_chunk_size", 1000)
	v.SetDefault("answer.overlap_size", 100)
	v.SetDefault("answer.timeout_seconds", 30)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("MONGODB_URI")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
