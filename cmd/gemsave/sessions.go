package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/gemsave/internal/picker"
	"github.com/fyrsmithlabs/gemsave/internal/project"
	"github.com/fyrsmithlabs/gemsave/internal/session"
)

var sessionsOutputJSON bool

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.Flags().BoolVar(&sessionsOutputJSON, "json", false, "Output results as JSON")
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List cached sessions for the project",
	Long: `List the Gemini CLI sessions cached for the project, oldest first.
The numbers match the ones offered by the interactive picker.

Examples:
  # List sessions for the current directory
  gemsave sessions

  # Machine-readable output
  gemsave sessions --json`,
	Args: cobra.NoArgs,
	RunE: runSessions,
}

// sessionItem is the JSON form of one listed session.
type sessionItem struct {
	Index        int        `json:"index"`
	Path         string     `json:"path"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	First        string     `json:"first,omitempty"`
	Last         string     `json:"last,omitempty"`
	MessageCount int        `json:"message_count"`
	Error        string     `json:"error,omitempty"`
}

// runSessions handles the sessions command
func runSessions(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	proj, err := project.New(a.projectDir)
	if err != nil {
		return err
	}

	paths, err := session.NewLocator(a.layout).Locate(proj.ID)
	if err != nil {
		return err
	}
	entries := a.previewer().PreviewAll(paths)
	session.SortEntries(entries)

	out := cmd.OutOrStdout()
	if sessionsOutputJSON {
		return outputJSON(out, sessionItems(entries))
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, picker.MsgNoSessions)
		return nil
	}
	for i, entry := range entries {
		if entry.Err != nil {
			fmt.Fprintln(out, picker.FormatError(entry.Path, entry.Err))
			continue
		}
		fmt.Fprintln(out, picker.FormatPreview(i+1, entry.Preview))
	}
	return nil
}

func sessionItems(entries []session.Entry) []sessionItem {
	items := make([]sessionItem, 0, len(entries))
	for i, entry := range entries {
		item := sessionItem{Index: i + 1, Path: entry.Path}
		if entry.Err != nil {
			item.Error = entry.Err.Error()
		} else {
			start := entry.Preview.StartTime
			item.StartTime = &start
			item.First = entry.Preview.First
			item.Last = entry.Preview.Last
			item.MessageCount = entry.Preview.MessageCount
		}
		items = append(items, item)
	}
	return items
}
