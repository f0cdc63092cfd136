package main

import (
	"fmt"
	"os"

	"github.com/Julian-Alberts/gyard"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var evalFlag bool

var rootCmd = &cobra.Command{
	Use:   "postfix \"expression\"",
	Short: "Convert an infix expression to postfix notation",
	Long: `Convert an infix arithmetic expression to postfix (reverse Polish)
notation and print the resulting token sequence.

Supported are numbers, the operators + - * / ^ < <= > >= == != and or xor,
parentheses, and function calls like sqrt(2) or max(1, 2).`,
	Example: `  postfix "5 + 2 * sin(123)"
  postfix --eval "max(2, 3) / 3 * 4"`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVar(&evalFlag, "eval", false, "also evaluate the expression and print the result")
	rootCmd.SilenceUsage = true
}

func run(cmd *cobra.Command, args []string) error {
	infix, err := tokenize(args[0])
	if err != nil {
		return err
	}

	postfix, err := gyard.ToPostfix(infix)
	if err != nil {
		return err
	}

	fmt.Println(render(postfix))

	if evalFlag {
		result, err := evaluate(postfix)
		if err != nil {
			return err
		}
		fmt.Printf("= %v\n", result)
	}
	return nil
}
