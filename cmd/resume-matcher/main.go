// Package main provides the resume-matcher command line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "resume-matcher [resume.pdf]",
	Short: "Match a PDF resume against required skills",
	Long:  "resume-matcher extracts the text of a PDF resume, detects known skills, scores them against the required skills and shows a results dashboard.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/resume-matcher/config.yaml if not provided)")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
