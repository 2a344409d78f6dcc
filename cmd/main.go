// file: cmd/main.go

package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ha1tch/p3header/cmd/info"
	"github.com/ha1tch/p3header/cmd/rewrite"
	"github.com/ha1tch/p3header/internal/args"
	"github.com/ha1tch/p3header/internal/console"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the command line and returns the process exit status
func run(argv []string, stdout io.Writer) int {
	argv = args.Normalize(argv)

	status := 0
	if err := execute(newRootCommand(stdout), argv); err != nil {
		fmt.Fprintln(stdout, err)
		status = 1
	}

	if args.Has(argv, "-i", "--interactive") {
		if err := console.WaitForKey(os.Stdin, stdout); err != nil {
			log.Debugf("key wait failed: %v", err)
		}
	}
	return status
}

func execute(root *cobra.Command, argv []string) error {
	root.SetArgs(argv)
	return root.Execute()
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	var (
		flags        rewrite.Flags
		interactive  bool
		quiet, debug bool
	)

	root := &cobra.Command{
		Use:   "p3header -f <file> [-o <file>] [-b|-na|-ca|-c] [options]",
		Short: "Add, update or remove the +3DOS header of a ZX Spectrum +3 file",
		Long: "Adds or updates the 128-byte PLUS3DOS header of a file, keeping the\n" +
			"parameters of an existing header unless new ones are given, or saves\n" +
			"the file without its header.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			console.Setup(stdout, quiet, debug)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().NFlag() == 0 {
				return cmd.Usage()
			}

			opts, err := rewrite.NewRewriteOptions(&flags)
			if err != nil {
				return err
			}
			return rewrite.Rewrite(flags.Input, opts)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stdout)
	root.CompletionOptions.DisableDefaultCmd = true

	f := root.Flags()
	f.StringVarP(&flags.Input, "file", "f", "", "input file")
	f.StringVarP(&flags.Output, "output", "o", "", "output file (default: the input file)")
	f.BoolVarP(&flags.Basic, "basic", "b", false, "BASIC program header (type 0)")
	f.BoolVar(&flags.NumericArray, "numeric-array", false, "numeric array header (type 1), also -na")
	f.BoolVar(&flags.CharArray, "char-array", false, "character array header (type 2), also -ca")
	f.BoolVarP(&flags.Code, "code", "c", false, "code header (type 3, the default)")
	f.StringVarP(&flags.Address, "address", "a", "", "execute/load address for code (decimal, $hex, #hex or 0xhex)")
	f.StringVarP(&flags.Variables, "variables", "v", "", "variables offset for BASIC")
	f.StringVarP(&flags.Line, "line", "l", "", "autorun line for BASIC (0-9999)")
	f.StringVarP(&flags.Name, "name", "n", "", "array variable name")
	f.BoolVarP(&flags.RemoveHeader, "remove-header", "r", false, "save the file without its +3DOS header")
	f.BoolVarP(&interactive, "interactive", "i", false, "wait for a key press before exiting")
	root.MarkFlagsMutuallyExclusive("basic", "numeric-array", "char-array", "code")

	pf := root.PersistentFlags()
	pf.BoolVar(&quiet, "quiet", false, "only print warnings and errors")
	pf.BoolVar(&debug, "debug", false, "print debug information")

	root.AddCommand(newInfoCommand())
	return root
}

func newInfoCommand() *cobra.Command {
	opts := info.DefaultInfoOptions()

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show the +3DOS header of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			opts.Output = cmd.OutOrStdout()
			return info.Info(argv[0], opts)
		},
	}
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "output in JSON format")
	return cmd
}
