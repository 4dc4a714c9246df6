package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felix-ide/felix/internal/protocol"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a Python file and print its tree as one JSON object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(protocol.Request{
			Command:  protocol.CmdParseFile,
			FilePath: args[0],
		})
	},
}

var extractImportsCmd = &cobra.Command{
	Use:   "extract_imports <file>",
	Short: "Print a file's import statements in source order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(protocol.Request{
			Command:  protocol.CmdExtractImports,
			FilePath: args[0],
		})
	},
}

var resolveModuleCmd = &cobra.Command{
	Use:   "resolve_module <name>",
	Short: "Resolve a dotted module name to its source location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(protocol.Request{
			Command:    protocol.CmdResolveModule,
			ModuleName: args[0],
		})
	},
}
