package cli

import (
	"fmt"
	"github.com/alvinbaena/pwd-analyst/internal/report"
	"github.com/alvinbaena/pwd-analyst/internal/util"
	"github.com/alvinbaena/pwd-analyst/pkg/strength"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"io"
	"strconv"
	"strings"
)

var (
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords with uppercase and lowercase letters, digits and symbols",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateCommand(cmd.OutOrStdout())
		},
	}
)

func init() {
	generateCmd.Flags().IntVarP(&length, "length", "l", 16, fmt.Sprintf("Password length, at least %d.", strength.MinLength))
	generateCmd.Flags().IntVarP(&count, "count", "c", 1, "Number of passwords to generate.")

	rootCmd.AddCommand(generateCmd)
}

// validateLength accepts the generator lengths offered to users. The core can
// go down to 4 characters, anything below 8 fails the length check though.
func validateLength(input string) error {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("please enter a valid number")
	}

	if n < strength.MinLength {
		return fmt.Errorf("please enter a number greater than or equal to %d", strength.MinLength)
	}

	return nil
}

func generateCommand(out io.Writer) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	if err := validateLength(strconv.Itoa(length)); err != nil {
		return fmt.Errorf("invalid length %d: %s", length, err)
	}
	if count < 1 {
		return fmt.Errorf("invalid count %d: at least one password has to be generated", count)
	}

	for i := 0; i < count; i++ {
		if err := generateAndRender(out, length); err != nil {
			return err
		}
	}

	return nil
}

func generateAndRender(out io.Writer, n int) error {
	password, err := strength.Generate(n)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(out, "Generated password evaluation:"); err != nil {
		return err
	}

	return report.Render(out, report.Analyze(password, compare))
}

func lengthPrompt() promptui.Prompt {
	return promptui.Prompt{
		Label:    fmt.Sprintf("Password length (min %d)", strength.MinLength),
		Default:  "16",
		Validate: validateLength,
	}
}
