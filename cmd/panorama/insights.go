package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/narrativelab/panorama/internal/dataset"
	"github.com/narrativelab/panorama/internal/insights"
	"github.com/narrativelab/panorama/internal/llm"
)

// insightsCmd prints key findings for the loaded dataset.
var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Print key findings for the dataset",
	Long: `Insights summarizes the analysis into a handful of key findings. With an
ANTHROPIC_API_KEY in the environment the findings are generated by a model
from the summary statistics; otherwise the curated findings for the demo
dataset are printed.`,
	Args: cobra.NoArgs,
	RunE: runInsights,
}

func init() {
	insightsCmd.Flags().String("csv", "", "path to the coded messages CSV")
	insightsCmd.Flags().String("json", "", "path to the analysis summary JSON")
	insightsCmd.Flags().Bool("sample", false, "use the synthetic demo dataset")
	insightsCmd.Flags().String("model", "", "override the default model")
}

func runInsights(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return exitError(ExitInvalidArgs, "panorama: %v", err)
	}

	snap, err := loadSnapshot(cfg)
	if err != nil {
		var le *dataset.LoadError
		if !errors.As(err, &le) {
			return exitError(ExitLoadFailure, "panorama: %v", err)
		}
		slog.Warn("falling back to synthetic demo dataset", "input", le.Input, "path", le.Path, "error", le.Err)
		snap = dataset.Sample()
	}

	findings := generateFindings(cmd, snap)

	out := cmd.OutOrStdout()
	for i, f := range findings {
		if f.Title != "" {
			fmt.Fprintf(out, "%d. %s: %s\n", i+1, f.Title, f.Detail)
		} else {
			fmt.Fprintf(out, "%d. %s\n", i+1, f.Detail)
		}
	}
	return nil
}

// generateFindings tries the LLM path and falls back to the curated
// findings when no provider is available or the call fails.
func generateFindings(cmd *cobra.Command, snap *dataset.Snapshot) []insights.Finding {
	model, _ := cmd.Flags().GetString("model")

	var opts []llm.AnthropicOption
	if model != "" {
		opts = append(opts, llm.WithModel(model))
	}

	provider, err := llm.NewAnthropicProvider(opts...)
	if err != nil {
		slog.Debug("no LLM provider configured, using curated findings", "error", err)
		return insights.Static()
	}

	findings, err := insights.Generate(cmd.Context(), provider, snap.Summary)
	if err != nil {
		slog.Warn("insight generation failed, using curated findings", "error", err)
		return insights.Static()
	}
	return findings
}
