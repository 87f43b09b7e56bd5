// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command summer prints an extractive summary of a text file or stdin.
// Implements: docs/ARCHITECTURE § Command Line.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	// A .env file is optional; values already in the environment win.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree and binds its flags to viper.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "summer",
		Short:         "Extractive text summarizer",
		Long:          "summer splits text into sentences, ranks them with TextRank or a centroid overlap score, and prints the most representative ones.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Global flags.
	flags := rootCmd.PersistentFlags()
	flags.String("strategy", "textrank", "Ranking strategy: textrank or centroid")
	flags.String("segmenter", "punkt", "Sentence segmenter: punkt or regexp")
	flags.Bool("preserve-order", true, "Print sentences in document order instead of rank order")
	flags.Int("skip-min-words", 0, "Ignore sentences with this many words or fewer")
	flags.Int("skip-max-words", 0, "Ignore sentences with this many words or more")
	flags.String("kernel", "word", "TextRank distance kernel: word or diff")
	flags.Bool("similarity", false, "Weight TextRank edges by similarity instead of raw distance")
	flags.Float64("damping", 0.85, "TextRank damping factor")
	flags.Float64("tolerance", 1e-4, "TextRank convergence tolerance")
	flags.Int("max-iterations", 1000, "TextRank iteration cap")
	flags.Bool("keep-stopwords", false, "Count stopwords in centroid overlap")
	flags.Duration("timeout", 0, "Abort summarization after this long (0 = no limit)")
	flags.String("format", "text", "Output format: text, json or yaml")
	flags.String("list", "none", "Text list style: none, ordered or unordered")
	flags.String("separator", "\n", "Separator between sentences in text output")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	for _, name := range []string{
		"strategy", "segmenter", "preserve-order", "skip-min-words", "skip-max-words",
		"kernel", "similarity", "damping", "tolerance", "max-iterations", "keep-stopwords",
		"timeout", "format", "list", "separator", "verbose",
	} {
		viper.BindPFlag(name, flags.Lookup(name))
	}

	// Env vars: SUMMER_STRATEGY, SUMMER_DAMPING, etc.
	viper.SetEnvPrefix("SUMMER")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".summer")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	rootCmd.AddCommand(newSummarizeCmd())
	rootCmd.AddCommand(newSegmentCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print summer version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "summer %s\n", version)
		},
	}
}
