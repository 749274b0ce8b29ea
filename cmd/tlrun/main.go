// Command tlrun is the CLI entry point: eval/repl/check/version over the
// demand-driven evaluator, driven by cobra instead of the teacher's
// hand-rolled flag parsing (cmd/ailang/main.go), since cobra+pflag already
// rode along unused in the teacher's indirect dependency closure.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/translucid-lang/tlcore/internal/config"
	"github.com/translucid-lang/tlcore/internal/desugar"
	"github.com/translucid-lang/tlcore/internal/driver"
	"github.com/translucid-lang/tlcore/internal/errors"
	"github.com/translucid-lang/tlcore/internal/replshell"
	"github.com/translucid-lang/tlcore/internal/surface"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	flagTrace   bool
	flagNoColor bool
	flagConfig  string
)

func main() {
	root := &cobra.Command{
		Use:   "tlrun",
		Short: "Demand-driven evaluator for the TransLucid-dialect core language",
	}
	root.PersistentFlags().BoolVar(&flagTrace, "trace", false, "print the seeded context and domain before evaluating")
	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	root.PersistentFlags().StringVar(&flagConfig, "config", ".tlcore.yaml", "path to a driver config file")

	root.AddCommand(newEvalCmd(), newReplCmd(), newCheckCmd(), newVersionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadDriver() (*driver.Driver, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagNoColor {
		color.NoColor = true
	}
	drv := driver.New()
	drv.Quirks.LTMapsToGTE = cfg.Quirks.LTMapsToGTE
	drv.Quirks.NEMapsToMod = cfg.Quirks.NEMapsToMod
	if flagTrace || cfg.Trace {
		drv.Trace = os.Stderr
	}
	return drv, nil
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <file>",
		Short: "Evaluate a JSON-encoded L1 expression tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			expr, err := surface.ParseJSON(data)
			if err != nil {
				return err
			}
			drv, err := loadDriver()
			if err != nil {
				return err
			}
			r, err := drv.Run(expr)
			if err != nil {
				return printError(err)
			}
			v, err := driver.ExpectValue(r)
			if err != nil {
				return printError(err)
			}
			fmt.Println(v.String())
			return nil
		},
	}
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			drv, err := loadDriver()
			if err != nil {
				return err
			}
			replshell.Run(drv, os.Stdout)
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Desugar a JSON-encoded L1 expression tree without evaluating it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			expr, err := surface.ParseJSON(data)
			if err != nil {
				return err
			}
			if _, _, err := desugar.Transform(expr); err != nil {
				return printError(err)
			}
			fmt.Println("ok")
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("tlcore %s (%s)\n", version, buildTime)
			return nil
		},
	}
}

func printError(err error) error {
	if rep, ok := errors.AsReport(err); ok {
		return fmt.Errorf("%s: %s (%s)", rep.Code, rep.Message, rep.Phase)
	}
	return err
}
