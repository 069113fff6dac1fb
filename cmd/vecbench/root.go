package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/vector/internal/logger"
)

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	logLevel  string
	logFormat string
	jsonOut   bool
	noColor   bool
}

func (g *globalFlags) loggingEnabled() bool {
	return g.logLevel != "" && !strings.EqualFold(g.logLevel, "off")
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	cmd := &cobra.Command{
		Use:   "vecbench",
		Short: "Exercise vectors under different allocation strategies",
		Long: `vecbench runs append, insert, erase and mixed workloads on a vector of
int64 and reports how its capacity grew and what the allocation strategy saw:
buffers allocated and released, elements constructed, destroyed and moved.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogging(g, cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "off", "Log strategy traffic at this level (debug, info, warn, error, off)")
	cmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "text", "Log format (text or json)")
	cmd.PersistentFlags().BoolVar(&g.jsonOut, "json", false, "Output in JSON format")
	cmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newRunCmd(g), newStrategiesCmd(g), newVersionCmd())
	return cmd
}

func initLogging(g *globalFlags, w io.Writer) error {
	if !g.loggingEnabled() {
		return logger.Init(logger.Options{})
	}
	lvl, err := logger.ParseLevel(g.logLevel)
	if err != nil {
		return err
	}
	return logger.Init(logger.Options{
		Enabled: true,
		Level:   lvl,
		Format:  g.logFormat,
		Writer:  w,
	})
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
