// Package main provides the entry point for the Style Assistant HTTP
// API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "style_assistant",
	Short: "AI Style Assistant HTTP API Server",
	Long:  "Style Assistant serves NPC chat replies and themed outfit recommendations for the marketplace frontend via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
