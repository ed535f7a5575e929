package cli

import (
	"github.com/alvinbaena/pwd-analyst/internal/audit"
	"github.com/alvinbaena/pwd-analyst/internal/util"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"os"
)

var (
	auditCmd = &cobra.Command{
		Use:   "audit",
		Short: "Score every password of a list (one per line) and summarize the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return auditCommand()
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	auditCmd.Flags().StringVarP(&inputFile, "in-file", "i", "", "Password list input file path (required)")
	auditCmd.MarkFlagRequired("in-file")
	auditCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of threads to use for the evaluation. If omitted or less than 1, defaults to the number of logical processors of the machine.")

	rootCmd.AddCommand(auditCmd)
}

func auditCommand() error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	s := util.Stats()
	defer s()

	file, err := os.Open(inputFile)
	if err != nil {
		return err
	}

	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing password list file")
		}
	}(file)

	summary, err := audit.NewAuditor(threads).Run(file)
	if err != nil {
		return err
	}

	summary.Log()
	return nil
}
