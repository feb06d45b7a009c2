package main

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/qint4/internal/logger"
)

// NewCLI builds the root command with all subcommands attached.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "qint4",
		Short:         "Symmetric int4 quantization of float32 sequences",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			asJSON, _ := cmd.Flags().GetBool("log-json")

			level := logger.Level(verbose)
			l := logger.Text(cmd.ErrOrStderr(), level)
			if asJSON {
				l = logger.JSON(cmd.ErrOrStderr(), level)
			}

			cmd.SetContext(logger.WithContext(cmd.Context(), l))
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug details to stderr")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON lines")

	rootCmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newInspectCmd(),
		newPackCmd(),
		newUnpackCmd(),
	)

	return rootCmd
}
