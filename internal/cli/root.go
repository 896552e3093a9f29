package cli

import (
	"fmt"

	"github.com/ib-77/composable/internal/log"
	"github.com/ib-77/composable/pkg/version"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ropc",
		Short: "Run declarative step pipelines over numbers",
		Long:  `ropc builds a chain of numeric steps from a YAML definition and applies it to an input value.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.Init(logLevel, logFormat, cmd.ErrOrStderr())
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newKindsCmd())
	cmd.AddCommand(newRunCmd())
	return cmd
}

func Execute() error {
	return rootCmd.Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ropc %s\n", version.Version)
		},
	}
}
