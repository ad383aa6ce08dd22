// Command titlecase applies Unicode titlecasing to the first rune of each
// argument, or of each stdin line when no arguments are given.
//
//	$ titlecase ﬄange
//	Fflange
//	$ titlecase --tr-az --lower-rest iSTANBUL
//	İstanbul
//	$ titlecase --check ǅungla
//	ǅungla	starts-title=true	rest-lower=true
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/az-ai-labs/titlecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		trAz      bool
		lowerRest bool
		nfc       bool
		check     bool
	)

	cmd := &cobra.Command{
		Use:   "titlecase [text ...]",
		Short: "Titlecase the first rune of each argument or stdin line",
		Long: `Titlecase converts the first rune of each input to its Unicode titlecase
form. Digraphs and ligatures expand per SpecialCasing.txt (ﬄ becomes Ffl),
and --tr-az applies the Turkish/Azerbaijani rules (i becomes İ).

With no arguments, input is read line by line from stdin.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			process := func(s string) {
				if nfc {
					s = norm.NFC.String(s)
				}
				if check {
					fmt.Fprintf(out, "%s\tstarts-title=%t\trest-lower=%t\n",
						s, titlecase.StartsTitle(s), titlecase.StartsTitleRestLower(s))
					return
				}
				fmt.Fprintln(out, titleFunc(trAz, lowerRest)(s))
			}

			if len(args) > 0 {
				for _, arg := range args {
					process(arg)
				}
				return nil
			}
			return eachLine(cmd.InOrStdin(), process)
		},
	}

	cmd.Flags().BoolVar(&trAz, "tr-az", false, "apply Turkish/Azerbaijani rules (i titlecases to İ)")
	cmd.Flags().BoolVar(&lowerRest, "lower-rest", false, "lowercase everything after the first rune")
	cmd.Flags().BoolVar(&nfc, "nfc", false, "NFC-normalize input before titlecasing")
	cmd.Flags().BoolVar(&check, "check", false, "report titlecase predicates instead of transforming")
	return cmd
}

func titleFunc(trAz, lowerRest bool) func(string) string {
	switch {
	case trAz && lowerRest:
		return titlecase.TitleTrAzLowerRest
	case trAz:
		return titlecase.TitleTrAz
	case lowerRest:
		return titlecase.TitleLowerRest
	default:
		return titlecase.Title
	}
}

func eachLine(r io.Reader, fn func(string)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return nil
}
