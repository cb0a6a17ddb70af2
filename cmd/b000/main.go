// Command b000 converts between mzML XML and the B000 binary interchange
// format, and prints a B000 file as JSON (spec §6).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "b000",
		Short: "Convert between mzML and the B000 binary container format",
	}

	root.AddCommand(newConvertCmd())
	root.AddCommand(newCatCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
