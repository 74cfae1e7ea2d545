package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/implicit/model"
)

const (
	appName = "wrmf"
	version = "v0.1.0"
)

func main() {
	// Structured logging with sane defaults; stdout stays clean for
	// the recommendation output.
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := execute(); err != nil {
		log.Fatal().Err(err).Msg("wrmf failed")
	}
}

func execute() error {
	root := &cobra.Command{
		Use:     appName,
		Short:   "WRMF trainer for implicit-feedback interaction logs",
		Version: version,
	}
	root.AddCommand(trainCmd())

	return root.Execute()
}

func trainCmd() *cobra.Command {
	cfg := defaultConfig()
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Factorize a CSV of user,item interactions and print top-N recommendations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Config file first, explicitly set flags win.
			if cfgPath != "" {
				fileCfg, err := loadConfig(cfgPath)
				if err != nil {
					return err
				}
				merge(cmd, &cfg, fileCfg)
			}
			if cfg.Input == "" {
				return fmt.Errorf("no input file: set --input or the config's input field")
			}

			return runTrain(cfg)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "yaml config file")
	cmd.Flags().StringVar(&cfg.Input, "input", cfg.Input, "CSV file of user,item pairs")
	cmd.Flags().IntVar(&cfg.Factors, "factors", cfg.Factors, "latent factor count")
	cmd.Flags().Float64Var(&cfg.CPos, "cpos", cfg.CPos, "confidence weight for observed entries")
	cmd.Flags().Float64Var(&cfg.Reg, "reg", cfg.Reg, "ridge regularization (keep > 0)")
	cmd.Flags().IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "training epochs")
	cmd.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel row workers per pass")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "rng seed for factor initialization")
	cmd.Flags().IntVar(&cfg.TopN, "top-n", cfg.TopN, "recommendations per user")
	cmd.Flags().BoolVar(&cfg.ExcludeSeen, "exclude-seen", cfg.ExcludeSeen, "skip already-seen items")

	return cmd
}

// merge overlays file values onto cfg for every flag the user did not
// set explicitly on the command line.
func merge(cmd *cobra.Command, cfg *Config, file Config) {
	if !cmd.Flags().Changed("input") {
		cfg.Input = file.Input
	}
	if !cmd.Flags().Changed("factors") {
		cfg.Factors = file.Factors
	}
	if !cmd.Flags().Changed("cpos") {
		cfg.CPos = file.CPos
	}
	if !cmd.Flags().Changed("reg") {
		cfg.Reg = file.Reg
	}
	if !cmd.Flags().Changed("iterations") {
		cfg.Iterations = file.Iterations
	}
	if !cmd.Flags().Changed("workers") {
		cfg.Workers = file.Workers
	}
	if !cmd.Flags().Changed("seed") {
		cfg.Seed = file.Seed
	}
	if !cmd.Flags().Changed("top-n") {
		cfg.TopN = file.TopN
	}
	if !cmd.Flags().Changed("exclude-seen") {
		cfg.ExcludeSeen = file.ExcludeSeen
	}
}

func runTrain(cfg Config) error {
	data, users, items, err := loadInteractions(cfg.Input)
	if err != nil {
		return err
	}
	log.Info().
		Int("users", data.Rows()).
		Int("items", data.Cols()).
		Int("interactions", data.NNZ()).
		Msg("interactions loaded")

	m, err := model.New(data, cfg.options(), rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return err
	}

	start := time.Now()
	for ep := 1; ep <= cfg.Iterations; ep++ {
		epStart := time.Now()
		if err := m.Iterate(); err != nil {
			return fmt.Errorf("epoch %d: %w", ep, err)
		}
		log.Info().
			Int("epoch", ep).
			Int("of", cfg.Iterations).
			Dur("took", time.Since(epStart)).
			Msg("epoch complete")
	}
	log.Info().Dur("took", time.Since(start)).Msg("training complete")

	// Rankings go to stdout: user, item, score — one line each.
	for u := range users {
		top, err := m.Recommend(u, cfg.TopN, cfg.ExcludeSeen)
		if err != nil {
			return fmt.Errorf("recommend for %q: %w", users[u], err)
		}
		for _, rec := range top {
			fmt.Printf("%s\t%s\t%.6f\n", users[u], items[rec.Item], rec.Score)
		}
	}

	return nil
}
