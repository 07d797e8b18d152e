// Command rucalc evaluates one arithmetic expression written in Russian
// words and prints the result in words.
//
//	rucalc двадцать пять плюс тринадцать
//	echo "сочетаний из пять по три" | rucalc
//	rucalc tokens семь остаток от деления три
//	rucalc rpn два в степени три в степени два
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cours-de-latin/rucalc"
	"github.com/cours-de-latin/rucalc/internal/config"
	"github.com/cours-de-latin/rucalc/internal/logger"
)

// errReported marks a failure whose message was already printed.
var errReported = errors.New("reported")

// readExpression joins args, or reads standard input once when there are
// none.
func readExpression(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, "read stdin")
	}
	return strings.TrimSpace(string(data)), nil
}

// newCalculator builds a calculator from the configured lexicon. Pipeline
// stages are logged to logOut when verbosity is positive.
func newCalculator(v *viper.Viper, verbosity int, logOut io.Writer) (*rucalc.Calculator, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	opts := []rucalc.Option{rucalc.WithLogger(logger.NewVerbose(verbosity, logOut))}
	if cfg.Lexicon.Path != "" {
		lx, err := rucalc.LoadLexicon(cfg.Lexicon.Path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, rucalc.WithLexicon(lx))
	}
	return rucalc.New(opts...), nil
}

// runner wraps the common steps of every command: read the expression,
// stop quietly on empty input, build the calculator and print the calc
// error message to stdout.
func runner(v *viper.Viper, verbosity *int, fn func(*rucalc.Calculator, string, io.Writer) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		expr, err := readExpression(cmd, args)
		if err != nil {
			return err
		}
		if strings.TrimSpace(expr) == "" {
			return nil
		}
		calc, err := newCalculator(v, *verbosity, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if err := fn(calc, expr, out); err != nil {
			var e *rucalc.Error
			if !errors.As(err, &e) {
				return err
			}
			fmt.Fprintln(out, e.Error())
			if hint := e.Hint(); hint != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), hint)
			}
			return errReported
		}
		return nil
	}
}

func evaluate(calc *rucalc.Calculator, expr string, out io.Writer) error {
	result, err := calc.Evaluate(expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, result)
	return nil
}

func printTokens(calc *rucalc.Calculator, expr string, out io.Writer) error {
	for _, tok := range calc.Tokenize(expr) {
		fmt.Fprintln(out, tok)
	}
	return nil
}

func printPostfix(calc *rucalc.Calculator, expr string, out io.Writer) error {
	elems, err := calc.Postfix(expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, rucalc.FormatPostfix(elems))
	return nil
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var verbosity int

	root := &cobra.Command{
		Use:           "rucalc [expression...]",
		Short:         "Evaluate arithmetic written in Russian words",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runner(v, &verbosity, evaluate),
	}

	flags := root.PersistentFlags()
	flags.String("lexicon", "", "path to a YAML lexicon (default: embedded)")
	flags.CountVarP(&verbosity, "verbose", "v", "log pipeline stages to stderr")
	_ = v.BindPFlag("lexicon.path", flags.Lookup("lexicon"))

	root.AddCommand(
		&cobra.Command{
			Use:   "tokens [expression...]",
			Short: "Print the token stream of an expression",
			RunE:  runner(v, &verbosity, printTokens),
		},
		&cobra.Command{
			Use:   "rpn [expression...]",
			Short: "Print an expression in postfix order",
			RunE:  runner(v, &verbosity, printPostfix),
		},
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "rucalc:", err)
		}
		os.Exit(1)
	}
}
