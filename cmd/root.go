/*
Copyright © 2025 docassist
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/docassist/docassist-be/config"
	"github.com/docassist/docassist-be/service"
	"github.com/docassist/docassist-be/types"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docassist-be",
	Short: "Document assistant backend",
	Long: `docassist-be extracts text from PDF documents, splits it into bounded
overlapping chunks and runs two inference tasks over those chunks:
abstractive summarization and extractive question answering.

Run "start" for the HTTP server, or "summarize"/"ask" for one-shot
processing from the command line.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yaml", "config file")
}

// initConfig reads in ENV variables if set.
func initConfig() {
	viper.AutomaticEnv() // read in environment variables that match
}

// newBackend builds the configured inference backend. Backends are
// constructed once here, before the first chunk call, and fail fast.
func newBackend(cfg *config.Config) (service.AIBackend, error) {
	switch cfg.AIProvider {
	case "gemini":
		return service.NewGeminiService(cfg.GeminiAPIKeys, cfg.Model)
	case "openai", "":
		return service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown ai_provider: %s", cfg.AIProvider)
	}
}

func assistantServiceConfig(cfg *config.Config) service.AssistantServiceConfig {
	return service.AssistantServiceConfig{
		SummaryChunking: types.DocumentServiceConfig{
			MaxChunkSize: cfg.Summary.MaxChunkSize,
			OverlapSize:  cfg.Summary.OverlapSize,
		},
		AnswerChunking: types.DocumentServiceConfig{
			MaxChunkSize: cfg.Answer.MaxChunkSize,
			OverlapSize:  cfg.Answer.OverlapSize,
		},
		SummaryTimeout: time.Duration(cfg.Summary.TimeoutSeconds) * time.Second,
		AnswerTimeout:  time.Duration(cfg.Answer.TimeoutSeconds) * time.Second,
	}
}
