// Command pnt formats a template with command line arguments and inspects
// template directives.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bjaus/pnt"
)

// exitAssertion is the status used when a fail-fast formatter aborts.
const exitAssertion = 2

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pnt",
		Short:         "printf-style template formatter",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := cmd.Flags().GetString("color")
			if err != nil {
				return err
			}
			return setColor(mode, cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().String("config", "", "configuration file (.yaml, .yml or .toml)")
	root.PersistentFlags().String("color", "auto", "colorize errors (auto|on|off)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log every directive to stderr")

	root.AddCommand(newFormatCmd())
	root.AddCommand(newExplainCmd())
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func setColor(mode string, w io.Writer) error {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(w)
	default:
		return errors.Newf("invalid --color %q (auto|on|off)", mode)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printError(w io.Writer, err error) {
	label := color.New(color.FgRed, color.Bold).SprintFunc()
	if k, ok := pnt.KindOf(err); ok {
		fmt.Fprintf(w, "%s %v (%s)\n", label("error:"), err, color.YellowString(k.String()))
		return
	}
	fmt.Fprintf(w, "%s %v\n", label("error:"), err)
}

// newLogger returns the command logger: silent unless verbose.
func newLogger(cmd *cobra.Command) zerolog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zerolog.Nop()
	}
	out := zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: color.NoColor}
	return zerolog.New(out).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// loadFormatter builds the formatter from --config and the command flags.
// Flags override the file.
func loadFormatter(cmd *cobra.Command) (*pnt.Formatter, error) {
	var cfg pnt.Config
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		if cfg, err = pnt.LoadConfig(path); err != nil {
			return nil, err
		}
	}
	if fl := cmd.Flags().Lookup("fail-fast"); fl != nil && fl.Changed {
		if ff, _ := cmd.Flags().GetBool("fail-fast"); ff {
			cfg.Policy = pnt.FailFast.String()
		} else {
			cfg.Policy = pnt.ReturnErrors.String()
		}
	}
	if fl := cmd.Flags().Lookup("strict"); fl != nil && fl.Changed {
		cfg.StrictArguments, _ = cmd.Flags().GetBool("strict")
	}

	opts, err := cfg.Options(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		opts = append(opts, pnt.WithLogger(newLogger(cmd)))
	}
	return pnt.New(opts...), nil
}
