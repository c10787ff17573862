package cli

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Devesh-1988-Wan/z10triage/internal/board"
	"github.com/Devesh-1988-Wan/z10triage/internal/model"
	"github.com/Devesh-1988-Wan/z10triage/internal/ui"
)

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or migrate the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.store.Init(); err != nil {
				return err
			}
			ui.OK("database ready at " + app.cfg.DatabasePath())
			return nil
		},
	}
}

func newLsCmd(app *App) *cobra.Command {
	var filters board.Filters
	var priority string

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Print the filtered, sorted board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if priority != "" {
				filters.Priority = model.ParsePriority(priority)
			}
			items, err := app.store.GetAll()
			if err != nil {
				return err
			}
			buckets := board.VisibleItems(items, filters)
			for _, st := range model.Statuses {
				bucket := buckets[st]
				fmt.Printf("%s (%d)\n", st.Label(), len(bucket))
				for _, it := range bucket {
					fmt.Printf("  %s  %s\n", ui.C("\033[2m", shortID(it.ID)), strings.Join(ui.CardLines(it), "\n      "))
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filters.Query, "query", "q", "", "free-text filter")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "priority filter (critical|high|medium|low)")
	cmd.Flags().StringVarP(&filters.Assignee, "assignee", "a", "", "assignee filter (exact, case-insensitive)")
	return cmd
}

func newAddCmd(app *App) *cobra.Command {
	var (
		description, priority, severity string
		assignee, tags, due, status     string
	)

	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Create a new item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return errors.New("add: empty title")
			}

			it := model.TriageItem{
				ID:          model.NewID(),
				Title:       title,
				Description: strings.TrimSpace(description),
				Priority:    model.ParsePriority(priority),
				Severity:    parseSeverity(severity),
				Assignee:    strings.TrimSpace(assignee),
				Tags:        model.SplitTags(tags),
				Due:         strings.TrimSpace(due),
				Status:      model.DisplayStatus(model.Status(status)),
			}
			if err := app.store.Put(it); err != nil {
				return err
			}
			ui.OK("added " + shortID(it.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "description")
	cmd.Flags().StringVar(&priority, "priority", "", "Critical|High|Medium|Low (default High)")
	cmd.Flags().StringVar(&severity, "severity", "", "S1|S2|S3|S4 (default S3)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "owner")
	cmd.Flags().StringVar(&tags, "tags", "", "comma-separated tags")
	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "new", "new|in_progress|blocked|done")
	return cmd
}

func newMvCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mv <id> <status>",
		Short: "Move an item to another column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := app.resolveItem(args[0])
			if err != nil {
				return err
			}
			target := model.Status(args[1])
			if model.DisplayStatus(target) != target {
				return errors.Errorf("mv: unknown status %q", args[1])
			}
			it.Status = target
			if err := app.store.Put(it); err != nil {
				return err
			}
			ui.OK(fmt.Sprintf("moved %s to %s", shortID(it.ID), target))
			return nil
		},
	}
}

func newRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := app.resolveItem(args[0])
			if err != nil {
				return err
			}
			if err := app.store.Delete(it.ID); err != nil {
				return err
			}
			ui.OK("removed " + shortID(it.ID))
			return nil
		},
	}
}

// resolveItem finds an item by full id or unique prefix.
func (app *App) resolveItem(id string) (model.TriageItem, error) {
	items, err := app.store.GetAll()
	if err != nil {
		return model.TriageItem{}, err
	}

	var matches []model.TriageItem
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
		if strings.HasPrefix(it.ID, id) {
			matches = append(matches, it)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.TriageItem{}, errors.Errorf("no item with id %q", id)
	default:
		return model.TriageItem{}, errors.Errorf("id prefix %q is ambiguous (%d matches)", id, len(matches))
	}
}

func parseSeverity(s string) model.Severity {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "S1":
		return model.SeverityS1
	case "S2":
		return model.SeverityS2
	case "S4":
		return model.SeverityS4
	}
	return model.SeverityS3
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
