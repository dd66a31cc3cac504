package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cultivatectl",
		Short:        "Operator tool for the cultivation service",
		SilenceUsage: true,
	}
	root.AddCommand(newAlmanacCmd(), newTokenCmd(), newRealmsCmd())
	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
