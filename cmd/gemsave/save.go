package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/gemsave/internal/checkpoint"
)

var saveOutputJSON bool

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.Flags().BoolVar(&saveOutputJSON, "json", false, "Output result as JSON")
}

var saveCmd = &cobra.Command{
	Use:   "save <session-file> <name>",
	Short: "Save a session file as a checkpoint",
	Long: `Convert a session file into a checkpoint without prompting.
An existing checkpoint with the same name is replaced.

Examples:
  # Save a session as "before-refactor"
  gemsave save ~/.gemini/tmp/<id>/chats/session-2025-01-01.json before-refactor`,
	Args: cobra.ExactArgs(2),
	RunE: runSave,
}

// runSave handles the save command
func runSave(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	writer, err := a.writer()
	if err != nil {
		return err
	}

	result, err := writer.Save(a.ctx, &checkpoint.SaveRequest{
		ProjectDir:  a.projectDir,
		SessionPath: args[0],
		Name:        args[1],
	})
	if err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}

	if saveOutputJSON {
		return outputJSON(cmd.OutOrStdout(), result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Session saved as '%s'\n", result.Name)
	return nil
}
