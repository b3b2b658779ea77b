package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/logandonley/fontdetect/pkg/fontdetect"
	"github.com/spf13/cobra"
)

var detector *fontdetect.Detector

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	cobra.OnInitialize(func() {
		if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
			logger.SetLevel(log.DebugLevel)
		}
	})

	detector = fontdetect.New(fontdetect.WithLogger(logger))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fontdetect",
	Short: "fontdetect reports which font families are installed",
	Long: `Detect installed font families through the mechanism native to
this host: the Windows registry, the macOS font manager, fontconfig,
or the X core font server.

Examples:
  # Check a single family (exit status 1 if absent)
  fontdetect has "DejaVu Sans Mono"

  # Print the first installed family from a preference list
  fontdetect first "Consolas" "DejaVu Sans Mono" "Courier New"

  # Print every detected family
  fontdetect list`,
}

var hasCmd = &cobra.Command{
	Use:   "has [font family]",
	Short: "Check whether a font family is installed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		family := detector.HasFontFamily(cmd.Context(), args[0])
		if family == "" {
			return fmt.Errorf("font family %q is not installed", args[0])
		}
		fmt.Println(family)
		return nil
	},
}

var firstCmd = &cobra.Command{
	Use:   "first [font families...]",
	Short: "Print the first installed family from an ordered list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		family := detector.FirstFontFamily(cmd.Context(), args)
		if family == "" {
			return fmt.Errorf("none of the given font families are installed")
		}
		fmt.Println(family)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List detected font families",
	RunE: func(cmd *cobra.Command, args []string) error {
		families := detector.Families(cmd.Context())
		if len(families) == 0 {
			fmt.Println("No fonts detected")
			return nil
		}
		for _, family := range families {
			fmt.Println(family)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hasCmd)
	rootCmd.AddCommand(firstCmd)
	rootCmd.AddCommand(listCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
