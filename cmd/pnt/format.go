package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [flags] <template> [arg...]",
		Short: "Format a template with arguments",
		Long: `Format a template with arguments and write the result to stdout.

Arguments are typed by their text: true and false are booleans, decimal
integers are signed, 0x/0o/0b literals are unsigned, and everything else is
text. A prefix forces a type: s: text, c: character, i: signed, u: unsigned,
p: pointer, f: floating point. Write negative numbers as i:-5, or after --.

The template understands the escapes \n, \t, \\ and \%.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFormat,
	}
	cmd.Flags().Bool("fail-fast", false, "abort on the first failure instead of returning an error")
	cmd.Flags().Bool("strict", false, "fail when an argument is never used")
	return cmd
}

func runFormat(cmd *cobra.Command, args []string) (err error) {
	f, err := loadFormatter(cmd)
	if err != nil {
		return err
	}
	tmpl, err := unescape(args[0])
	if err != nil {
		return err
	}
	vals, err := parseArgs(args[1:])
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer func() {
		if ferr := out.Flush(); err == nil {
			err = ferr
		}
	}()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		perr, ok := r.(error)
		if !ok || !errors.HasAssertionFailure(perr) {
			panic(r)
		}
		_ = out.Flush()
		printError(cmd.ErrOrStderr(), perr)
		fmt.Fprintln(cmd.ErrOrStderr(), "aborted: fail-fast policy")
		os.Exit(exitAssertion)
	}()

	return f.Fprint(out, tmpl, vals...)
}
