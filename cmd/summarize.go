/*
Copyright © 2025 docassist
*/
package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/docassist/docassist-be/config"
	"github.com/docassist/docassist-be/service"
	"github.com/docassist/docassist-be/utils"
)

// summarizeCmd represents the summarize command
var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize a PDF document from the command line",
	Long: `Extracts the text of a PDF file, splits it into overlapping chunks and
summarizes each chunk with the configured AI backend. The per-chunk summaries
are joined into one document summary and printed to stdout.`,
	Run: func(cmd *cobra.Command, args []string) {
		filePath, _ := cmd.Flags().GetString("file")
		output, _ := cmd.Flags().GetString("output")
		if filePath == "" {
			log.Fatal("--file is required")
		}

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		backend, err := newBackend(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize AI backend: %v", err)
		}

		assistant := service.NewAssistantService(assistantServiceConfig(cfg), backend, nil)
		extract := service.NewExtractService()

		reader := newBarReporter("Reading document...")
		document, err := extract.ExtractText(filePath, reader)
		reader.finish()
		if err != nil {
			log.Fatalf("Failed to extract text: %v", err)
		}
		fmt.Printf("Document loaded successfully. Contains %d characters and %d pages.\n",
			document.CharCount, document.PageCount)

		session := assistant.CreateSession(document)
		reporter := newBarReporter("Summarizing...")
		summary := assistant.GenerateSummary(context.Background(), session, reporter)
		reporter.finish()

		fmt.Println(summary)

		if output != "" {
			path, err := utils.SaveTextResult(summary, cfg.ExportDir, output)
			if err != nil {
				log.Fatalf("Failed to save summary: %v", err)
			}
			fmt.Println("Summary saved to", path)
		}
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().StringP("file", "f", "", "Path to the PDF file to summarize")
	summarizeCmd.Flags().StringP("output", "o", "", "File name to save the summary under the export directory")
}
