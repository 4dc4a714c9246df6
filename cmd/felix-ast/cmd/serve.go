package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve framed requests on stdin/stdout until shutdown or EOF",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newApp()
		if err != nil {
			return err
		}
		newLogger().Info("serving on stdio")
		_, err = a.RunSession(os.Stdin, os.Stdout)
		return err
	},
}
