// Package cmd - grading commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gridin/core/display"
	"gridin/core/format"
	"gridin/core/grading"
	"gridin/internal/logging"
)

// checkCmd grades one response
var checkCmd = &cobra.Command{
	Use:   "check <key> <response>",
	Short: "Check whether a response is correct for an answer key",
	Long: `Check whether a response is correct for an answer key.

Examples:
  gridin check 2/3 .667          # correct
  gridin check "[1/3,2/3)" .667  # incorrect: past the open end
  gridin check "6;9;12" 36/3     # correct`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

var mixedCmd = &cobra.Command{
	Use:   "mixed <key> <response>",
	Short: "Check whether a response is a mistyped mixed number",
	Long: `Check whether a response such as 21/2 was meant as the mixed
number 2 1/2 and would be correct for the key read that way.`,
	Args: cobra.ExactArgs(2),
	RunE: runMixed,
}

var displayCmd = &cobra.Command{
	Use:   "display <key>",
	Short: "Show an answer key the way students see it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := display.Display(args[0])
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), map[string]string{"display": out})
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var formatCmd = &cobra.Command{
	Use:   "format <text>",
	Short: "Squeeze text into the four grid columns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := format.Format(args[0])
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), map[string]interface{}{
				"formatted": out,
				"valid":     format.Valid(args[0]),
			})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%q\n", out)
		return nil
	},
}

var validCmd = &cobra.Command{
	Use:   "valid <response>",
	Short: "Check whether a response could be bubbled into the grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok := format.Valid(args[0])
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), map[string]bool{"valid": ok})
		}
		fmt.Fprintln(cmd.OutOrStdout(), verdict(ok, "valid", "invalid"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(mixedCmd)
	rootCmd.AddCommand(displayCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(validCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	answer := grading.NewAnswer(args[0])
	response := args[1]
	correct := answer.Accepts(response)

	logging.Debug("checked response",
		zap.String("key", answer.Text()),
		zap.String("key_value", display.Value(answer.Value())),
		zap.String("response", response),
		zap.Bool("correct", correct))

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), map[string]interface{}{
			"key":         answer.Text(),
			"key_display": answer.Display(),
			"response":    response,
			"correct":     correct,
			"mixed":       answer.MixedAnswer(response),
		})
	}

	if !answer.Parseable() {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: key %q cannot accept any response\n", answer.Text())
	}
	fmt.Fprintln(cmd.OutOrStdout(), verdict(correct, "correct", "incorrect"))
	return nil
}

func runMixed(cmd *cobra.Command, args []string) error {
	mixed := grading.MixedAnswer(args[0], args[1])
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), map[string]bool{"mixed": mixed})
	}
	fmt.Fprintln(cmd.OutOrStdout(), verdict(mixed, "mixed", "not mixed"))
	return nil
}

func verdict(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}
