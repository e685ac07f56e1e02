package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/vkovalenko/go-doc-indexer/api"
	"github.com/vkovalenko/go-doc-indexer/config"
	"github.com/vkovalenko/go-doc-indexer/internal/engine"
	"github.com/vkovalenko/go-doc-indexer/internal/jobs"
)

const maxRequestBodySize = 1 << 20 // 1 MB, diagnostic API carries no payloads

func main() {
	// Define command-line flags
	var (
		help        = flag.Bool("help", false, "Show help message")
		version     = flag.Bool("version", false, "Show version information")
		configPath  = flag.String("config", "", "Path to YAML config file")
		port        = flag.Int("port", 0, "Port to run the server on (overrides config)")
		rebuild     = flag.Bool("rebuild", false, "Rebuild the inverted index and exit")
		verifyWord  = flag.String("verify", "", "Verify a word against the index and exit")
		expectedDoc = flag.Int("expect-doc", -1, "Document index the verified word is expected in (with --verify)")
	)

	flag.Parse()

	if *help {
		fmt.Printf("Document Indexer - inverted index builder and diagnostic tool for Ukrainian text corpora\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                                # Serve the diagnostic API on the configured port\n", os.Args[0])
		fmt.Printf("  %s --rebuild                      # Rebuild the inverted index and exit\n", os.Args[0])
		fmt.Printf("  %s --verify Бабича --expect-doc 5 # Check a word against the index\n", os.Args[0])
		return
	}

	if *version {
		fmt.Printf("Document Indexer v1.0.0\n")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	jobManager := jobs.NewManager(cfg.Indexer.Workers)
	defer jobManager.Stop()

	indexEngine, err := engine.NewEngine(cfg, jobManager)
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}

	if *rebuild {
		stats, err := indexEngine.RebuildIndex()
		if err != nil {
			log.Fatalf("Rebuild failed: %v", err)
		}
		fmt.Printf("Indexed %d documents (%d distinct stems)\n", stats.TotalDocuments, stats.DistinctStems)
		return
	}

	if *verifyWord != "" {
		var expected *int
		if *expectedDoc >= 0 {
			expected = expectedDoc
		}
		report, err := indexEngine.VerifyWord(*verifyWord, expected)
		if err != nil {
			log.Fatalf("Verification failed: %v", err)
		}
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode report: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	router := gin.Default()
	router.Use(api.CORSMiddleware())
	router.Use(api.RequestSizeLimitMiddleware(maxRequestBodySize))
	api.SetupRoutes(router, indexEngine)

	log.Printf("Starting server on port %d...", cfg.Server.Port)
	if err := router.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
