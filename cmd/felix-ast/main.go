// felix-ast turns Python source into a serializable syntax tree and derived
// facts (imports, module locations) for the Felix code-intelligence backend.
// It runs one-shot per file, as a persistent stdio worker, or as a Unix
// socket daemon.
package main

import (
	"os"

	"github.com/felix-ide/felix/cmd/felix-ast/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
