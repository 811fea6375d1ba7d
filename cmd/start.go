/*
Copyright © 2025 docassist
*/
package cmd

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/docassist/docassist-be/config"
	"github.com/docassist/docassist-be/database"
	"github.com/docassist/docassist-be/handler"
	"github.com/docassist/docassist-be/repository"
	"github.com/docassist/docassist-be/service"
)

// startServerCmd represents the startServer command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the document assistant server",
	Long:  `Starts a server that accepts document uploads and answers summarization and question requests about them`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		backend, err := newBackend(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize AI backend: %v", err)
		}

		// Conversation history is optional: without MongoDB the assistant
		// still works, it just keeps no history.
		var conversationRepo repository.ConversationRepo
		if cfg.MongoURI != "" {
			mongoClient, err := database.NewMongoClient(cfg.MongoURI)
			if err != nil {
				log.Fatalf("Failed to connect to MongoDB: %v", err)
			}
			conversationRepo = repository.NewConversationRepo(mongoClient.Database("docassist"))
		}

		// Initialize services
		assistantService := service.NewAssistantService(assistantServiceConfig(cfg), backend, conversationRepo)
		extractService := service.NewExtractService()
		fileService := service.NewFileService(cfg.UploadDir, cfg.ExportDir)
		wsService := service.NewWebSocketService()

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		uploadHandler := handler.NewUploadHandler(fileService, extractService, assistantService)
		assistantHandler := handler.NewAssistantHandler(assistantService, fileService, wsService)
		documentHandler := handler.NewDocumentHandler(cfg.UploadDir, cfg.ExportDir)

		// Setup Gin router
		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		apiV1 := router.Group("/api/v1")
		{
			apiV1.POST("/documents/upload", uploadHandler.UploadDocumentHandler)
			apiV1.GET("/documents", documentHandler.ServeDocument)
			apiV1.POST("/summarize", assistantHandler.HandleSummarize)
			apiV1.POST("/ask", assistantHandler.HandleAsk)
			apiV1.GET("/history", assistantHandler.HandleHistory)
			apiV1.POST("/export", assistantHandler.HandleExport)
			apiV1.GET("/exports", documentHandler.ServeExport)
		}
		router.GET("/ws/progress", func(c *gin.Context) {
			wsService.HandleProgress(c.Writer, c.Request)
		})

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}
