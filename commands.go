package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tuannh982/segment-decoder/config"
	"github.com/tuannh982/segment-decoder/segment"
	"github.com/tuannh982/segment-decoder/segment/commons"
	"github.com/tuannh982/segment-decoder/segment/input"

	log "github.com/sirupsen/logrus"
)

var version = "dev"

type rootOptions struct {
	configPath string
	logLevel   string
	workers    int
	strict     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "segdec",
		Short: "Decode scrambled seven-segment displays",
		Long: `segdec reads display entries, one per line:

  <10 patterns> | <4 patterns>

and recovers the four-digit value each display shows.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (overrides config)")
	flags.IntVar(&opts.workers, "workers", 0, "decoding goroutines (overrides config)")
	flags.BoolVar(&opts.strict, "strict", false, "check every entry has one pattern per digit")

	root.AddCommand(
		newAnswerCmd(opts, "count", "Count outputs showing 1, 4, 7 or 8", countAnswer),
		newAnswerCmd(opts, "sum", "Sum the decoded value of every entry", sumAnswer),
		newAnswerCmd(opts, "solve", "Print the count and the sum, one per line", solveAnswer),
		newAnswerCmd(opts, "decode", "Print the decoded value of each entry", decodeAnswer),
	)
	return root
}

type answerFunc func(cmd *cobra.Command, solver *segment.Solver, entries []commons.Entry) error

func newAnswerCmd(opts *rootOptions, use, short string, answer answerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [file|-]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			entries, err := readEntries(cmd, args)
			if err != nil {
				return err
			}
			solver := segment.NewSolver(cfg.Decoder.Workers, cfg.Decoder.Strict)
			return answer(cmd, solver, entries)
		},
	}
}

func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("workers") {
		cfg.Decoder.Workers = o.workers
	}
	if flags.Changed("strict") {
		cfg.Decoder.Strict = o.strict
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := log.StandardLogger()
	logger.SetOutput(cmd.ErrOrStderr())
	if err := cfg.ConfigureLogger(logger); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readEntries(cmd *cobra.Command, args []string) ([]commons.Entry, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	entries, err := input.Parse(r)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"entries": len(entries)}).Debug("read input")
	return entries, nil
}

func countAnswer(cmd *cobra.Command, solver *segment.Solver, entries []commons.Entry) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), solver.CountUnique(entries))
	return err
}

func sumAnswer(cmd *cobra.Command, solver *segment.Solver, entries []commons.Entry) error {
	sum, err := solver.DecodeSum(cmd.Context(), entries)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), sum)
	return err
}

func solveAnswer(cmd *cobra.Command, solver *segment.Solver, entries []commons.Entry) error {
	if err := countAnswer(cmd, solver, entries); err != nil {
		return err
	}
	return sumAnswer(cmd, solver, entries)
}

func decodeAnswer(cmd *cobra.Command, solver *segment.Solver, entries []commons.Entry) error {
	values, err := solver.DecodeAll(cmd.Context(), entries)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, v := range values {
		if _, err := fmt.Fprintf(out, "%04d\n", v); err != nil {
			return err
		}
	}
	return nil
}
