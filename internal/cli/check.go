package cli

import (
	"errors"
	"github.com/alvinbaena/pwd-analyst/internal/report"
	"github.com/alvinbaena/pwd-analyst/internal/util"
	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"io"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check [PASSWORD]",
		Short: "Score a password and estimate how long a brute force would take to crack it",
		Args: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return cobra.NoArgs(cmd, args)
			}

			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return checkInteractive(cmd.OutOrStdout())
			}
			return checkPassword(cmd.OutOrStdout(), args[0])
		},
	}
)

func init() {
	checkCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode. The password is read from a masked prompt.")
	checkCmd.Flags().BoolVar(&compare, "compare", false, "Also show the zxcvbn score and crack time for the password.")

	rootCmd.AddCommand(checkCmd)
}

func checkPassword(out io.Writer, password string) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)
	return report.Render(out, report.Analyze(password, compare))
}

func passwordPrompt() promptui.Prompt {
	return promptui.Prompt{
		Label: "Password",
		Mask:  '*',
	}
}

func checkInteractive(out io.Writer) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	prompt := passwordPrompt()
	log.Info().Msgf("Running interactive session. ^C to exit")
	for {
		password, err := prompt.Run()
		if err != nil {
			if interrupted(err) {
				log.Info().Msgf("Goodbye")
				// No error to avoid the default cobra error message
				return nil
			}
			return err
		}

		if err = report.Render(out, report.Analyze(password, compare)); err != nil {
			log.Error().Err(err).Msg("Error writing the analysis")
		}
	}
}

func interrupted(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF)
}
