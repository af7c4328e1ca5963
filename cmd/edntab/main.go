package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/edntab"
)

func run(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("format")
	format, err := edntab.ParseFormat(name)
	if err != nil {
		return err
	}
	t, err := edntab.Ingest(os.Stdin, os.Stderr)
	if err != nil {
		return err
	}
	return edntab.Write(os.Stdout, format, t)
}

func main() {
	var names []string
	for _, f := range edntab.Formats() {
		names = append(names, f.String())
	}

	root := &cobra.Command{
		Use:   "edntab",
		Short: "Convert line-delimited EDN maps into a table",
		Long: "edntab reads one EDN value per line from standard input, keeps the\n" +
			"maps, and writes a table whose columns are the sorted union of all\n" +
			"keyword keys seen. Non-map lines and non-keyword keys are skipped\n" +
			"with a diagnostic on standard error.",
		Args:          cobra.NoArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringP("format", "f", edntab.TSV.String(),
		"output format, one of: "+strings.Join(names, ", "))

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
