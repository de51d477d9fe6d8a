package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/tcss/cssom/douceuradapter"
	"github.com/npillmayer/tcss/style/cascade"
	"github.com/npillmayer/tcss/widget"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check subcommand.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <stylesheet>",
		Short: "Check a stylesheet for errors",
		Long: `Check parses a stylesheet and compiles its rules for the widget registry.
Selector errors are fatal. Property errors are reported as diagnostics;
the declarations concerned are ignored.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), args[0])
		},
	}
}

func runCheck(w io.Writer, path string) error {
	ss, err := loadStylesheet(path)
	if err != nil {
		return err
	}
	diags := ss.Diagnostics()
	fmt.Fprintf(w, "%s: %d rules, %d diagnostics\n", path, len(ss.Rules()), len(diags))
	for _, d := range diags {
		fmt.Fprintf(w, "  %v\n", d)
	}
	return nil
}

func loadStylesheet(path string) (*cascade.Stylesheet, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read stylesheet: %w", err)
	}
	sheet, err := douceuradapter.Parse(string(src))
	if err != nil {
		return nil, err
	}
	reg, err := widget.Registry()
	if err != nil {
		return nil, err
	}
	return cascade.New(sheet, reg)
}
