// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: docs/ARCHITECTURE § Command Line.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/petar-djukic/summer/internal/segment"
	"github.com/petar-djukic/summer/pkg/summer"
	"github.com/petar-djukic/summer/pkg/types"
)

var envKeyReplacer = strings.NewReplacer("-", "_")

// newSummarizeCmd creates the "summarize" command.
func newSummarizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize [file]",
		Short: "Summarize a text file, or stdin when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSummarize,
	}

	cmd.Flags().StringP("count", "n", "3", `Sentences to keep: "3", "3 sentences", "50%", or a fraction below 1`)
	viper.BindPFlag("count", cmd.Flags().Lookup("count"))
	return cmd
}

// newSegmentCmd creates the "segment" command, which prints the sentences
// the summarizer would see.
func newSegmentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "segment [file]",
		Short: "Print the normalized sentences of a text file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sentences, err := readSentences(cmd, args)
			if err != nil {
				return err
			}
			for _, s := range sentences {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

// runSummarize executes the summarization pipeline.
func runSummarize(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(viper.GetBool("verbose"))
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	strategy, err := types.ParseStrategy(viper.GetString("strategy"))
	if err != nil {
		return err
	}

	cfg := summer.Config{
		Strategy:      strategy,
		PreserveOrder: viper.GetBool("preserve-order"),
		SkipMinWords:  viper.GetInt("skip-min-words"),
		SkipMaxWords:  viper.GetInt("skip-max-words"),
		Kernel:        viper.GetString("kernel"),
		Similarity:    viper.GetBool("similarity"),
		Damping:       viper.GetFloat64("damping"),
		Tolerance:     viper.GetFloat64("tolerance"),
		MaxIterations: viper.GetInt("max-iterations"),
		KeepStopwords: viper.GetBool("keep-stopwords"),
		Logger:        logger,
	}

	s, err := summer.New(cfg)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	sentences, err := readSentences(cmd, args)
	if err != nil {
		return err
	}
	considered := summer.FilterSentences(sentences, cfg.SkipMinWords, cfg.SkipMaxWords)

	count, err := summer.ParseCount(viper.GetString("count"), len(considered))
	if err != nil {
		return err
	}
	logger.Debug("input segmented",
		zap.Int("sentences", len(sentences)),
		zap.Int("considered", len(considered)),
		zap.Int("count", count))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	out, err := summer.SummarizeContext(ctx, s, sentences, count)
	if err != nil {
		logger.Error("summarization failed", zap.Error(err))
		return fmt.Errorf("summarizing: %w", err)
	}

	return render(cmd.OutOrStdout(), renderOptions{
		Format:    viper.GetString("format"),
		List:      viper.GetString("list"),
		Separator: viper.GetString("separator"),
	}, &types.Summary{
		Strategy:   strategy,
		Input:      len(sentences),
		Considered: len(considered),
		Requested:  count,
		Sentences:  out,
	})
}

// readSentences loads the input and segments it.
func readSentences(cmd *cobra.Command, args []string) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	seg, err := segment.ByName(viper.GetString("segmenter"))
	if err != nil {
		return nil, err
	}
	return seg.Segment(string(text)), nil
}

// newLogger returns a development logger when verbose is set and a
// production logger writing warnings and above otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
