package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"resume-matcher/internal/domain"
	"resume-matcher/internal/logging"
	"resume-matcher/internal/report"
	"resume-matcher/internal/skills"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze RESUME",
	Short: "Analyse one PDF resume and print the result",
	Long:  "Extracts the resume text, matches it against the required skills and prints the score, matched and missing skills and feedback. Optionally writes XLSX and PDF reports.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeSkills string
	analyzeJSON   bool
	analyzeXLSX   string
	analyzePDF    string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeSkills, "skills", "s", skills.DefaultRequired, "Comma-separated required skills")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the result as JSON")
	analyzeCmd.Flags().StringVar(&analyzeXLSX, "xlsx", "", "Write the skills table and chart to this XLSX file")
	analyzeCmd.Flags().StringVar(&analyzePDF, "pdf", "", "Write a PDF report to this file")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger, closer, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closer.Close()

	svc, err := buildService(cfg, logger)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume %s: %w", args[0], err)
	}
	result, err := svc.Analyze(context.Background(), data, analyzeSkills)
	if err != nil {
		return fmt.Errorf("failed to analyse %s: %w", args[0], err)
	}

	if analyzeXLSX != "" {
		buf, err := report.WriteXLSX(result)
		if err != nil {
			return fmt.Errorf("failed to render xlsx: %w", err)
		}
		if err := os.WriteFile(analyzeXLSX, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", analyzeXLSX, err)
		}
	}
	if analyzePDF != "" {
		buf, err := report.WritePDF(result)
		if err != nil {
			return fmt.Errorf("failed to render pdf: %w", err)
		}
		if err := os.WriteFile(analyzePDF, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", analyzePDF, err)
		}
	}

	if analyzeJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printResult(cmd.OutOrStdout(), result)
	return nil
}

func printResult(w io.Writer, r *domain.MatchResult) {
	fmt.Fprintf(w, "Match Score: %.2f%%\n", r.Score)
	fmt.Fprintf(w, "Matched Skills: %s\n", joinOrNone(r.MatchedSkills))
	fmt.Fprintf(w, "Missing Skills: %s\n", joinOrNone(r.MissingSkills))
	fmt.Fprintf(w, "Chart: matched %d (%.1f%%), missing %d (%.1f%%)\n",
		r.Chart.Matched, r.Chart.MatchedPercent(), r.Chart.Missing, r.Chart.MissingPercent())
	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warn)
	}
	if fb := strings.TrimSpace(r.Feedback); fb != "" {
		fmt.Fprintf(w, "\n%s\n", fb)
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
