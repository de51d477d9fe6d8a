package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/tcss/cssom/douceuradapter"
	"github.com/npillmayer/tcss/dom/domdbg"
	"github.com/npillmayer/tcss/engine"
	"github.com/npillmayer/tcss/widget"
	"github.com/spf13/cobra"
)

// ResolveOptions holds flags of the resolve subcommand.
type ResolveOptions struct {
	*RootOptions
	Format string
	Hover  []string
	Focus  string
}

// NewResolveCommand creates the resolve subcommand.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResolveOptions{RootOptions: rootOpts}
	cmd := &cobra.Command{
		Use:   "resolve <stylesheet> <markup>",
		Short: "Style a widget tree and print the result",
		Long: `Resolve builds a widget tree from a markup file, attaches the stylesheet
and prints the resolved style of every widget.

Formats:
  list     one line per widget with its non-default properties
  outline  the widget tree with its properties
  dot      a GraphViz diagram
  frame    the rendered screen`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.OutOrStdout(), opts, args[0], args[1])
		},
	}
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "list", "output format (list|outline|dot|frame)")
	cmd.Flags().StringSliceVar(&opts.Hover, "hover", nil, "ids of widgets under the pointer")
	cmd.Flags().StringVar(&opts.Focus, "focus", "", "id of the focused widget")
	return cmd
}

func runResolve(w io.Writer, opts *ResolveOptions, cssPath, markupPath string) error {
	src, err := os.ReadFile(cssPath)
	if err != nil {
		return fmt.Errorf("cannot read stylesheet: %w", err)
	}
	sheet, err := douceuradapter.Parse(string(src))
	if err != nil {
		return err
	}
	f, err := os.Open(markupPath)
	if err != nil {
		return fmt.Errorf("cannot read markup: %w", err)
	}
	defer f.Close()
	conf := opts.config
	screen := widget.NewScreen(conf.Width, conf.Height)
	if err := LoadMarkup(f, screen); err != nil {
		return err
	}
	reg, err := widget.Registry()
	if err != nil {
		return err
	}
	var renderErr error
	sched := engine.NewManualScheduler()
	eng := engine.New(
		engine.WithRegistry(reg),
		engine.WithScheduler(sched),
		engine.WithDefaults(conf.WithDefaults()),
		engine.WithErrorHandler(func(err error) { renderErr = err }),
	)
	if err := eng.AttachRules(screen, sheet); err != nil {
		return err
	}
	defer eng.Detach(screen)
	for _, id := range opts.Hover {
		wdgt := screen.Find(id)
		if wdgt == nil {
			return fmt.Errorf("no widget with id %q", id)
		}
		wdgt.MouseOver()
	}
	if opts.Focus != "" {
		wdgt := screen.Find(opts.Focus)
		if wdgt == nil {
			return fmt.Errorf("no widget with id %q", opts.Focus)
		}
		wdgt.Focus()
	}
	sched.Flush()
	if renderErr != nil {
		return renderErr
	}
	return output(w, opts.Format, screen, eng)
}

func output(w io.Writer, format string, screen *widget.Screen, eng *engine.Engine) error {
	switch format {
	case "list":
		out, err := domdbg.Listing(screen, eng)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case "outline":
		out, err := domdbg.Outline(screen, eng)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case "dot":
		return domdbg.ToGraphViz(screen, eng, w)
	case "frame":
		if err := screen.Repaint(); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, screen.Frame())
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}
