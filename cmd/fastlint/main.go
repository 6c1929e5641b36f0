// Command fastlint parses JavaScript and TypeScript sources and prints the
// diagnostics the front-end produces. It is a thin shell around the parser:
// one source buffer per file, visits discarded, diagnostics rendered
// clang-style.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fastlint/fastlint/internal/diag"
	"github.com/fastlint/fastlint/internal/js_parser"
	"github.com/fastlint/fastlint/internal/logger"
	"github.com/fastlint/fastlint/internal/visit"
)

type flags struct {
	language      string
	jsx           bool
	topLevelAwait string
	maxDepth      int
	color         string
}

func main() {
	f := flags{}

	root := &cobra.Command{
		Use:           "fastlint [files...]",
		Short:         "Lint JavaScript and TypeScript sources",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f, args)
		},
	}

	root.Flags().StringVar(&f.language, "language", "", "language to parse: js or ts (default from file extension)")
	root.Flags().BoolVar(&f.jsx, "jsx", false, "enable JSX (default from file extension)")
	root.Flags().StringVar(&f.topLevelAwait, "top-level-await", "auto", "treat top-level await as: auto or operator")
	root.Flags().IntVar(&f.maxDepth, "max-depth", 0, "expression nesting limit (0 for the default)")
	root.Flags().StringVar(&f.color, "color", "auto", "colorize output: auto, always, or never")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fastlint: %v\n", err)
		os.Exit(2)
	}
}

func run(f flags, paths []string) error {
	outputOptions := logger.OutputOptions{IncludeSource: true}
	switch f.color {
	case "always":
		outputOptions.UseColor = logger.ColorAlways
	case "never":
		outputOptions.UseColor = logger.ColorNever
	}

	hadErrors := false

	for _, path := range paths {
		contents, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		options, err := optionsForFile(f, path)
		if err != nil {
			return err
		}

		source := logger.NewSource(path, string(contents))
		collector := &diag.Collector{}
		js_parser.Parse(source, options, visit.Null{}, collector)

		msgs := make([]logger.Msg, 0, len(collector.Diagnostics))
		for _, d := range collector.Diagnostics {
			msgs = append(msgs, diag.ToMsg(d, &source))
		}
		if logger.PrintMessages(os.Stderr, outputOptions, msgs) > 0 {
			hadErrors = true
		}
	}

	if hadErrors {
		os.Exit(1)
	}
	return nil
}

func optionsForFile(f flags, path string) (js_parser.Options, error) {
	options := js_parser.Options{MaxDepth: f.maxDepth}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".ts", ".mts", ".cts":
		options.Language = js_parser.LanguageTS
	case ".tsx":
		options.Language = js_parser.LanguageTS
		options.JSX = true
	case ".jsx":
		options.JSX = true
	}

	switch f.language {
	case "":
	case "js":
		options.Language = js_parser.LanguageJS
	case "ts":
		options.Language = js_parser.LanguageTS
	default:
		return options, fmt.Errorf("unknown language %q (expected js or ts)", f.language)
	}

	if f.jsx {
		options.JSX = true
	}

	switch f.topLevelAwait {
	case "", "auto":
	case "operator":
		options.TopLevelAwait = js_parser.TopLevelAwaitOperator
	default:
		return options, fmt.Errorf("unknown top-level-await mode %q (expected auto or operator)", f.topLevelAwait)
	}

	return options, nil
}
