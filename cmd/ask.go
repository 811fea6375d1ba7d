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
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask a question about a PDF document from the command line",
	Long: `Extracts the text of a PDF file, splits it into overlapping chunks and
runs extractive question answering over every chunk. The best-scoring answer
is printed with its confidence.`,
	Run: func(cmd *cobra.Command, args []string) {
		filePath, _ := cmd.Flags().GetString("file")
		question, _ := cmd.Flags().GetString("question")
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
		reporter := newBarReporter("Searching...")
		answer := assistant.AnswerQuestion(context.Background(), session, question, reporter)
		reporter.finish()

		fmt.Println(answer)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringP("file", "f", "", "Path to the PDF file to query")
	askCmd.Flags().StringP("question", "q", "", "Question to ask about the document")
}
