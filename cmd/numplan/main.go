// Command numplan is a thin demonstration front end over the numplan
// engine: it loads metadata per a loader configuration file and either
// parses free-form text or formats an E.164 number. It carries no
// classifier logic of its own -- see numplan.Load, parser.PhoneNumberParser,
// and formatter.Formatter for the actual engine.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/coregx/numplan"
	"github.com/coregx/numplan/digitseq"
	"github.com/coregx/numplan/internal/config"
	"github.com/coregx/numplan/internal/diag"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "numplan",
		Short: "Validate, classify, parse, and format phone numbers from compiled metadata",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a loader configuration file (required)")

	root.AddCommand(newParseCommand(&configPath))
	root.AddCommand(newFormatCommand(&configPath))
	return root
}

func loadEngine(configPath string) (*numplan.Engine, error) {
	if configPath == "" {
		return nil, fmt.Errorf("numplan: --config is required")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger := diag.New(slog.Default())
	engine, err := numplan.Load(cfg.Providers(), cfg.RequestedVersion(), cfg.MaxConcurrency)
	logger.LoadOutcome(len(cfg.Sources), err)
	if err != nil {
		return nil, err
	}
	if engine == nil {
		return nil, fmt.Errorf("numplan: no metadata providers configured")
	}
	return engine, nil
}

func newParseCommand(configPath *string) *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse free-form text into an E.164 number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := loadEngine(*configPath)
			if err != nil {
				return err
			}

			var assumedCC digitseq.Sequence
			hasAssumed := false
			if region != "" {
				cc, err := engine.Parser.GetCallingCode(region)
				if err != nil {
					return err
				}
				assumedCC, hasAssumed = cc, true
			}

			result, err := engine.Parser.ParseStrictly(args[0], assumedCC, hasAssumed)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", result.Number.String(), result.Match, result.Format)
			return nil
		},
	}
	cmd.Flags().StringVar(&region, "region", "", "assumed region code, used to derive a calling code for national parsing")
	return cmd
}

func newFormatCommand(configPath *string) *cobra.Command {
	var international bool

	cmd := &cobra.Command{
		Use:   "format <e164>",
		Short: "Format an E.164 number (+<callingCode><nationalNumber>) for display",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := loadEngine(*configPath)
			if err != nil {
				return err
			}
			result, err := engine.Parser.ParseStrictly(args[0], digitseq.Empty, false)
			if err != nil {
				return err
			}
			var out string
			if international {
				out = engine.Formatter.FormatInternational(result.Number)
			} else {
				out = engine.Formatter.FormatNational(result.Number)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&international, "international", false, "format for international display instead of national")
	return cmd
}
