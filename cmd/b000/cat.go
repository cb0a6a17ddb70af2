package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/b000io/b000/b000"
)

func newCatCmd() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "cat PATH",
		Short: "Decode a B000 file and print it as pretty-printed JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			doc, err := b000.Decode(data, b000.DecodeOptions{})
			if err != nil {
				return err
			}

			if !full {
				doc.Run.SpectrumList = nil
				doc.Run.ChromatogramList = nil
			}

			out, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "include spectrum and chromatogram payload lists")
	return cmd
}
