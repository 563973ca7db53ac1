package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/narrativelab/panorama/internal/config"
	"github.com/narrativelab/panorama/internal/dataset"
)

// resolveConfig merges the configuration layers for a command invocation:
// flags win over PANORAMA_* environment variables, which win over
// .panorama.yaml, which wins over the built-in defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", config.FileName, err)
	}

	envCfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	envCfg.Merge(cfg)

	flags := cmd.Flags()
	if flags.Changed("csv") {
		cfg.CSVPath, _ = flags.GetString("csv")
	}
	if flags.Changed("json") {
		cfg.JSONPath, _ = flags.GetString("json")
	}
	if f := flags.Lookup("output"); f != nil && f.Changed {
		cfg.Output = f.Value.String()
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		cfg.Format = f.Value.String()
	}
	if f := flags.Lookup("addr"); f != nil && f.Changed {
		cfg.Addr = f.Value.String()
	}
	if f := flags.Lookup("sample"); f != nil && f.Changed {
		cfg.Sample, _ = flags.GetBool("sample")
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

// loadSnapshot resolves input paths from the config and loads the dataset.
// With Sample set it skips the files entirely.
func loadSnapshot(cfg *config.Config) (*dataset.Snapshot, error) {
	if cfg.Sample {
		slog.Info("using synthetic demo dataset")
		return dataset.Sample(), nil
	}

	csvPath, jsonPath := cfg.CSVPath, cfg.JSONPath
	if csvPath == "" || jsonPath == "" {
		defCSV, defJSON := dataset.DefaultPaths(".")
		if csvPath == "" {
			csvPath = defCSV
		}
		if jsonPath == "" {
			jsonPath = defJSON
		}
	}

	snap, err := dataset.Load(csvPath, jsonPath)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded analysis inputs", "csv", csvPath, "json", jsonPath, "records", len(snap.Records))
	return snap, nil
}
