package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	Trace      string
	config     Config
}

// traceKeys are the trace keys of the packages of this module.
var traceKeys = []string{
	"tcss.cssom", "tcss.style", "tcss.selector", "tcss.cascade",
	"tcss.engine", "tcss.widget",
}

// NewRootCommand creates the root command for the tcss CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	cmd := &cobra.Command{
		Use:           "tcss",
		Short:         "Stylesheets for terminal user interfaces",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := LoadConfig(opts.ConfigFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("trace") {
				conf.Trace = opts.Trace
			}
			opts.config = conf
			return setTraceLevel(conf.Trace)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.Trace, "trace", "error", "trace level (debug|info|error)")
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewResolveCommand(opts))
	return cmd
}

func setTraceLevel(level string) error {
	level = strings.ToLower(level)
	switch level {
	case "debug", "info", "error", "":
	default:
		return fmt.Errorf("invalid trace level %q: must be one of debug, info, error", level)
	}
	for _, key := range traceKeys {
		t := tracing.Select(key)
		switch level {
		case "debug":
			t.SetTraceLevel(tracing.LevelDebug)
		case "info":
			t.SetTraceLevel(tracing.LevelInfo)
		default:
			t.SetTraceLevel(tracing.LevelError)
		}
	}
	return nil
}
