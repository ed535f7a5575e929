// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pwdanalyst [COMMAND] [OPTIONS]",
		Short: "Check how strong a password is and generate strong ones",
		Long: "Score passwords against composition rules and common patterns, estimate how long a simple " +
			"brute force would take to crack them, and generate random passwords that pass every rule. " +
			"Without a command an interactive menu is started.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return menuCommand(cmd)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print more information on the processing")
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false, "Enable the profiling server (pprof) when running commands")
	rootCmd.PersistentFlags().Uint16Var(&pprofPort, "profile-port", 6060, "The port to use for the pprof server. Only used if the profile flag is set")
}

func Execute() error {
	return rootCmd.Execute()
}
