package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var checkpointsOutputJSON bool

func init() {
	rootCmd.AddCommand(checkpointsCmd)
	checkpointsCmd.Flags().BoolVar(&checkpointsOutputJSON, "json", false, "Output results as JSON")
}

var checkpointsCmd = &cobra.Command{
	Use:   "checkpoints",
	Short: "List saved checkpoints for the project",
	Long: `List the checkpoints saved for the project, sorted by name.

Examples:
  # List checkpoints for the current directory
  gemsave checkpoints

  # List checkpoints for another project as JSON
  gemsave checkpoints --project-dir ~/src/app --json`,
	Args: cobra.NoArgs,
	RunE: runCheckpoints,
}

// runCheckpoints handles the checkpoints command
func runCheckpoints(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	writer, err := a.writer()
	if err != nil {
		return err
	}

	entries, err := writer.List(a.ctx, a.projectDir)
	if err != nil {
		return fmt.Errorf("failed to list checkpoints: %w", err)
	}

	out := cmd.OutOrStdout()
	if checkpointsOutputJSON {
		return outputJSON(out, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No checkpoints found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tMODIFIED")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%d\t%s\n",
			truncate(e.Name, 40),
			e.Size,
			e.ModTime.Local().Format("2006-01-02 15:04"),
		)
	}
	return w.Flush()
}

// truncate shortens s to maxLen runes, marking the cut with "...".
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

func outputJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
