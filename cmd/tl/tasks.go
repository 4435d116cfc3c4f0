package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/tasklist/internal/editor"
	"github.com/amonks/tasklist/internal/listflags"
	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/task"
	"github.com/spf13/cobra"
)

// tl add
var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Add a task",
	Long: `Add a task at the top of the list.

With no text, opens $EDITOR when running interactively. Use --no-edit to
skip the editor, or --edit to force opening it. Reminders use
YYYY-MM-DDTHH:MM (or YYYY-MM-DD HH:MM) in local time and must be in the future.`,
	RunE: runAdd,
}

var (
	addAt     string
	addEditor editorChoice
)

// tl list
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var (
	listFilter task.Filter
	listJSON   bool
)

// tl toggle
var toggleCmd = &cobra.Command{
	Use:     "toggle <id>...",
	Aliases: []string{"done"},
	Short:   "Flip the completion state of one or more tasks",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runToggle,
}

// tl edit
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task's text and reminder",
	Long: `Edit a task's text and reminder.

By default, opens $EDITOR when running interactively and no update flags
are provided. The edited reminder is validated like a new one, so an
overdue reminder must be moved forward or cleared with --clear-at.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editText    string
	editAt      string
	editClearAt bool
	editEditor  editorChoice
)

// tl delete
var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

var deleteYes bool

// tl clear
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove tasks in bulk",
	Long: `Remove tasks in bulk.

With --filter all every task is removed. Under a narrower filter the
[tasks] clear-mode setting decides which side goes: "complement" (the
default) removes the tasks the filter hides, "matching" removes the ones
it shows.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

var (
	clearFilter task.Filter
	clearYes    bool
)

// tl show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

func init() {
	rootCmd.AddCommand(addCmd, listCmd, toggleCmd, editCmd, deleteCmd, clearCmd, showCmd)

	addCmd.Flags().StringVar(&addAt, "at", "", "Reminder time (YYYY-MM-DDTHH:MM)")
	addEditor.register(addCmd, "no text")

	listflags.AddFilterFlag(listCmd, &listFilter)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	editCmd.Flags().StringVar(&editText, "text", "", "New task text")
	editCmd.Flags().StringVar(&editAt, "at", "", "New reminder time (YYYY-MM-DDTHH:MM)")
	editCmd.Flags().BoolVar(&editClearAt, "clear-at", false, "Remove the reminder")
	editEditor.register(editCmd, "no flags")
	editCmd.MarkFlagsMutuallyExclusive("at", "clear-at")

	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")

	listflags.AddFilterFlag(clearCmd, &clearFilter)
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip the confirmation prompt")

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")

	addReminderFlagAliases(addCmd, editCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	datetime := addAt

	if addEditor.use(len(args) > 0, editor.IsInteractive()) {
		parsed, err := editor.EditTaskWithData(editor.TaskData{Text: text, Datetime: datetime})
		if err != nil {
			return err
		}
		text, datetime = parsed.Text, parsed.Datetime
	}

	return withSession(cmd, func(sess *session) error {
		created, err := sess.store.Create(text, datetime)
		if err != nil {
			return userError(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created task %d\n", created.ID)
		return nil
	})
}

func runList(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(sess *session) error {
		if err := sess.store.SetFilter(listFilter); err != nil {
			return err
		}
		view := sess.store.Render()

		if listJSON {
			return encodeJSON(cmd.OutOrStdout(), view.Tasks)
		}

		printTaskTable(cmd.OutOrStdout(), view.Tasks, sess.cfg.DatetimeFormat(), time.Now())
		return nil
	})
}

func runToggle(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(sess *session) error {
		for _, ref := range args {
			id, err := sess.store.Resolve(ref)
			if err != nil {
				return err
			}
			toggled, err := sess.store.Toggle(id)
			if err != nil {
				return err
			}
			if toggled == nil {
				return fmt.Errorf("%w: %d", task.ErrTaskNotFound, id)
			}
			state := "active"
			if toggled.Completed {
				state = "completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked task %d %s\n", toggled.ID, state)
		}
		return nil
	})
}

func runEdit(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(sess *session) error {
		id, err := sess.store.Resolve(args[0])
		if err != nil {
			return err
		}
		existing, err := sess.store.Get(id)
		if err != nil {
			return err
		}

		text, datetime := existing.Text, existing.Datetime
		hasFlags := anyFlagChanged(cmd, "text", "at", "clear-at")
		if editEditor.use(hasFlags, editor.IsInteractive()) {
			parsed, err := editor.EditTask(existing)
			if err != nil {
				return err
			}
			text, datetime = parsed.Text, parsed.Datetime
		} else {
			if cmd.Flags().Changed("text") {
				text = editText
			}
			if cmd.Flags().Changed("at") {
				datetime = editAt
			}
			if editClearAt {
				datetime = ""
			}
		}

		edited, err := sess.store.Edit(id, text, datetime)
		if err != nil {
			return userError(err)
		}
		if edited == nil {
			return fmt.Errorf("%w: %d", task.ErrTaskNotFound, id)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated task %d\n", edited.ID)
		return nil
	})
}

func runDelete(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(sess *session) error {
		id, err := sess.store.Resolve(args[0])
		if err != nil {
			return err
		}

		var prompter task.Prompter
		if deleteYes {
			prompter = task.Confirmed
		}
		removed, err := sess.store.Delete(id, prompter)
		if err != nil {
			return err
		}
		if !removed {
			fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d\n", id)
		return nil
	})
}

func runClear(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(sess *session) error {
		var prompter task.Prompter
		if clearYes {
			prompter = task.Confirmed
		}
		removed, err := sess.store.ClearByFilter(clearFilter, prompter)
		if err != nil {
			return userError(err)
		}
		if removed == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d %s\n", removed, pluralTasks(removed))
		return nil
	})
}

func runShow(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(sess *session) error {
		shown := make([]task.Task, 0, len(args))
		for _, ref := range args {
			id, err := sess.store.Resolve(ref)
			if err != nil {
				return err
			}
			item, err := sess.store.Get(id)
			if err != nil {
				return err
			}
			shown = append(shown, item)
		}

		if showJSON {
			return encodeJSON(cmd.OutOrStdout(), shown)
		}

		now := time.Now()
		suffixLengths := taskIDSuffixLengths(sess.store.Tasks())
		highlight := func(id string) string { return ui.HighlightID(id, suffixLengths[id]) }
		for i, item := range shown {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "---")
			}
			printTaskDetail(cmd.OutOrStdout(), item, highlight, sess.cfg.DatetimeFormat(), now)
		}
		return nil
	})
}

func pluralTasks(n int) string {
	if n == 1 {
		return "task"
	}
	return "tasks"
}
