package cli

import (
	"fmt"
	"github.com/alvinbaena/pwd-analyst/internal/report"
	"github.com/alvinbaena/pwd-analyst/internal/util"
	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	menuCheck = iota
	menuGenerate
	menuQuit
)

func mainMenu() promptui.Select {
	return promptui.Select{
		Label: "Select one of the options",
		Items: []string{
			"Check password strength",
			"Generate secure password",
			"Quit",
		},
		HideSelected: true,
	}
}

func menuCommand(cmd *cobra.Command) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)
	out := cmd.OutOrStdout()

	menu := mainMenu()
	for {
		choice, _, err := menu.Run()
		if err != nil {
			if interrupted(err) {
				log.Info().Msgf("Goodbye")
				return nil
			}
			return err
		}

		report.ClearScreen(os.Stdout)
		switch choice {
		case menuCheck:
			err = menuCheckPassword(out)
		case menuGenerate:
			err = menuGeneratePassword(out)
		case menuQuit:
			_, err = fmt.Fprintln(out, "Program finished. Thanks for using it!")
			return err
		}

		if err != nil {
			if interrupted(err) {
				continue
			}
			log.Error().Err(err).Msg("Error during interactive session")
		}
	}
}

func menuCheckPassword(out io.Writer) error {
	prompt := passwordPrompt()
	password, err := prompt.Run()
	if err != nil {
		return err
	}

	report.ClearScreen(os.Stdout)
	return report.Render(out, report.Analyze(password, compare))
}

func menuGeneratePassword(out io.Writer) error {
	prompt := lengthPrompt()
	input, err := prompt.Run()
	if err != nil {
		return err
	}

	// already validated by the prompt
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return err
	}

	report.ClearScreen(os.Stdout)
	return generateAndRender(out, n)
}
