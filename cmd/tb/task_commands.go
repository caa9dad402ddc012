package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mkern/taskbook/internal/config"
	"github.com/mkern/taskbook/internal/editor"
	"github.com/mkern/taskbook/internal/listflags"
	"github.com/mkern/taskbook/task"
	"github.com/spf13/cobra"
)

// tb add
var taskAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a new task.

By default, opens $EDITOR to edit a TOML representation of the task when
running interactively and no arguments are provided. Use --no-edit to skip the
editor, or --edit to force opening the editor even when not interactive.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTaskAdd,
}

var (
	taskAddDescription string
	taskAddPriority    string
	taskAddDue         string
	taskAddEdit        bool
	taskAddNoEdit      bool
)

// tb list
var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE:  runTaskList,
}

var (
	taskListPriority string
	taskListOverdue  bool
	taskListJSON     bool
	taskListAll      bool
)

// tb complete
var taskCompleteCmd = &cobra.Command{
	Use:   "complete <id>...",
	Short: "Mark one or more tasks as completed",
	Aliases: []string{
		"done",
	},
	Args: cobra.MinimumNArgs(1),
	RunE: runTaskComplete,
}

// tb reopen
var taskReopenCmd = &cobra.Command{
	Use:   "reopen <id>...",
	Short: "Reopen one or more completed tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskReopen,
}

// tb delete
var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskDelete,
}

// tb search
var taskSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tasks by title and description",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskSearch,
}

var taskSearchJSON bool

// tb show
var taskShowCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskShow,
}

var taskShowJSON bool

// tb update
var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>...",
	Short: "Update one or more tasks",
	Long: `Update one or more tasks.

By default, opens $EDITOR to edit a TOML representation of the task when
running interactively and no update flags are provided (one editor session per
ID). Use --no-edit to skip the editor, or --edit to force opening the editor
even when not interactive.`,
	Aliases: []string{
		"edit",
	},
	Args: cobra.MinimumNArgs(1),
	RunE: runTaskUpdate,
}

var (
	taskUpdateTitle       string
	taskUpdateDescription string
	taskUpdatePriority    string
	taskUpdateDue         string
	taskUpdateClearDue    bool
	taskUpdateEdit        bool
	taskUpdateNoEdit      bool
)

func init() {
	rootCmd.AddCommand(taskAddCmd, taskListCmd, taskCompleteCmd, taskReopenCmd,
		taskDeleteCmd, taskSearchCmd, taskShowCmd, taskUpdateCmd)

	// add flags
	taskAddCmd.Flags().StringVarP(&taskAddDescription, "description", "d", "", "Description (use '-' to read from stdin)")
	taskAddCmd.Flags().StringVarP(&taskAddPriority, "priority", "p", "", "Priority (low, medium, high)")
	taskAddCmd.Flags().StringVar(&taskAddDue, "due", "", "Due date (YYYY-MM-DD)")
	taskAddCmd.Flags().BoolVarP(&taskAddEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no arguments)")
	taskAddCmd.Flags().BoolVar(&taskAddNoEdit, "no-edit", false, "Do not open $EDITOR")

	// list flags
	taskListCmd.Flags().StringVarP(&taskListPriority, "priority", "p", "", "Filter by priority (low, medium, high)")
	taskListCmd.Flags().BoolVar(&taskListOverdue, "overdue", false, "Only tasks past their due date")
	taskListCmd.Flags().BoolVar(&taskListJSON, "json", false, "Output as JSON")
	listflags.AddAllFlag(taskListCmd, &taskListAll)

	// search flags
	taskSearchCmd.Flags().BoolVar(&taskSearchJSON, "json", false, "Output as JSON")

	// show flags
	taskShowCmd.Flags().BoolVar(&taskShowJSON, "json", false, "Output as JSON")

	// update flags
	taskUpdateCmd.Flags().StringVar(&taskUpdateTitle, "title", "", "New title")
	taskUpdateCmd.Flags().StringVarP(&taskUpdateDescription, "description", "d", "", "New description (use '-' to read from stdin)")
	taskUpdateCmd.Flags().StringVarP(&taskUpdatePriority, "priority", "p", "", "New priority (low, medium, high)")
	taskUpdateCmd.Flags().StringVar(&taskUpdateDue, "due", "", "New due date (YYYY-MM-DD)")
	taskUpdateCmd.Flags().BoolVar(&taskUpdateClearDue, "clear-due", false, "Remove the due date")
	taskUpdateCmd.Flags().BoolVarP(&taskUpdateEdit, "edit", "e", false, "Open $EDITOR (default if interactive)")
	taskUpdateCmd.Flags().BoolVar(&taskUpdateNoEdit, "no-edit", false, "Do not open $EDITOR")
}

func addPriorityValue(cmd *cobra.Command, cfg *config.Config) task.Priority {
	if cmd.Flags().Changed("priority") {
		return task.Priority(taskAddPriority)
	}
	if cfg.Tasks.DefaultPriority != "" {
		return task.Priority(cfg.Tasks.DefaultPriority)
	}
	return task.PriorityMedium
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	if err := resolveDescriptionFlag(cmd, &taskAddDescription, os.Stdin); err != nil {
		return err
	}

	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	title := ""
	if len(args) > 0 {
		title = args[0]
	}

	// Open the editor only when nothing was passed on the command line and
	// the session is interactive, unless --edit or --no-edit overrides.
	hasFlags := len(args) > 0 || hasChangedFlags(cmd, "description", "priority", "due")
	useEditor := shouldUseEditor(hasFlags, taskAddEdit, taskAddNoEdit, editor.IsInteractive())

	if useEditor {
		data := editor.DefaultAddData()
		data.Title = title
		data.Priority = string(addPriorityValue(cmd, env.cfg))
		if cmd.Flags().Changed("description") {
			data.Description = taskAddDescription
		}
		if cmd.Flags().Changed("due") {
			data.Due = taskAddDue
		}

		parsed, err := editor.EditTaskWithData(data)
		if err != nil {
			return err
		}

		due, err := parsed.DueDate()
		if err != nil {
			return err
		}

		created, err := env.store.Add(parsed.Title, task.AddOptions{
			Description: parsed.Description,
			Priority:    task.Priority(parsed.Priority),
			DueDate:     due,
		})
		if err != nil {
			return err
		}

		printTaskActionResults(env, "Added", []task.Task{*created})
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("title is required (use --edit to open editor)")
	}

	due, err := parseDueFlag(taskAddDue)
	if err != nil {
		return err
	}

	created, err := env.store.Add(title, task.AddOptions{
		Description: taskAddDescription,
		Priority:    addPriorityValue(cmd, env.cfg),
		DueDate:     due,
	})
	if err != nil {
		return err
	}

	printTaskActionResults(env, "Added", []task.Task{*created})
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	filter := task.ListFilter{
		IncludeCompleted: taskListAll,
		Overdue:          taskListOverdue,
	}
	if taskListPriority != "" {
		priority := task.Priority(taskListPriority)
		filter.Priority = &priority
	}

	items, err := env.store.List(filter)
	if err != nil {
		return err
	}

	if taskListJSON {
		return encodeJSONToStdout(items)
	}

	if len(items) == 0 {
		fmt.Println(emptyListMessage(env, filter))
		return nil
	}

	printTaskTable(env, items, time.Now())
	return nil
}

func emptyListMessage(env *cliEnv, filter task.ListFilter) string {
	if filter.IncludeCompleted {
		return "No tasks found."
	}

	all := filter
	all.IncludeCompleted = true
	items, err := env.store.List(all)
	if err == nil && len(items) > 0 {
		return "No open tasks. Use --all to include completed tasks."
	}
	return "No tasks found."
}

func runTaskComplete(cmd *cobra.Command, args []string) error {
	return runTaskAction(cmd, args, "Completed", func(store *task.Store, ids []int) ([]task.Task, error) {
		return store.Complete(ids)
	})
}

func runTaskReopen(cmd *cobra.Command, args []string) error {
	return runTaskAction(cmd, args, "Reopened", func(store *task.Store, ids []int) ([]task.Task, error) {
		return store.Reopen(ids)
	})
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	return runTaskAction(cmd, args, "Deleted", func(store *task.Store, ids []int) ([]task.Task, error) {
		return store.Delete(ids)
	})
}

func runTaskSearch(cmd *cobra.Command, args []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	items, err := env.store.Search(args[0])
	if err != nil {
		return err
	}

	if taskSearchJSON {
		return encodeJSONToStdout(items)
	}

	if len(items) == 0 {
		fmt.Println("No matching tasks found.")
		return nil
	}

	printTaskTable(env, items, time.Now())
	return nil
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	ids, err := parseIDArgs(args)
	if err != nil {
		return err
	}

	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	items, err := env.store.Show(ids)
	if err != nil {
		return err
	}

	if taskShowJSON {
		return encodeJSONToStdout(items)
	}

	styles := env.styles()
	for i, item := range items {
		if i > 0 {
			fmt.Println("---")
		}
		printTaskDetail(item, styles, time.Now())
	}
	return nil
}

func runTaskUpdate(cmd *cobra.Command, args []string) error {
	ids, err := parseIDArgs(args)
	if err != nil {
		return err
	}

	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	if err := resolveDescriptionFlag(cmd, &taskUpdateDescription, os.Stdin); err != nil {
		return err
	}

	hasFlags := hasChangedFlags(cmd, "title", "description", "priority", "due", "clear-due")
	useEditor := shouldUseEditor(hasFlags, taskUpdateEdit, taskUpdateNoEdit, editor.IsInteractive())

	if useEditor {
		updated := make([]task.Task, 0, len(ids))
		for _, id := range ids {
			existing, err := env.store.Show([]int{id})
			if err != nil {
				return err
			}

			data := editor.DataFromTask(&existing[0])
			if cmd.Flags().Changed("title") {
				data.Title = taskUpdateTitle
			}
			if cmd.Flags().Changed("description") {
				data.Description = taskUpdateDescription
			}
			if cmd.Flags().Changed("priority") {
				data.Priority = taskUpdatePriority
			}
			if cmd.Flags().Changed("due") {
				data.Due = taskUpdateDue
			}

			parsed, err := editor.EditTaskWithData(data)
			if err != nil {
				return err
			}

			opts, err := updateOptionsFromParsed(parsed)
			if err != nil {
				return err
			}

			result, err := env.store.Update([]int{id}, opts)
			if err != nil {
				return err
			}
			updated = append(updated, result[0])
		}

		printTaskActionResults(env, "Updated", updated)
		return nil
	}

	if !hasFlags {
		return fmt.Errorf("at least one update flag is required (use --edit to open editor)")
	}

	opts := task.UpdateOptions{}
	if cmd.Flags().Changed("title") {
		opts.Title = &taskUpdateTitle
	}
	if cmd.Flags().Changed("description") {
		opts.Description = &taskUpdateDescription
	}
	if cmd.Flags().Changed("priority") {
		priority := task.Priority(taskUpdatePriority)
		opts.Priority = &priority
	}
	if taskUpdateClearDue {
		opts.ClearDue = true
	} else if cmd.Flags().Changed("due") {
		due, err := parseDueFlag(taskUpdateDue)
		if err != nil {
			return err
		}
		opts.DueDate = due
	}

	updated, err := env.store.Update(ids, opts)
	if err != nil {
		return err
	}

	printTaskActionResults(env, "Updated", updated)
	return nil
}

// updateOptionsFromParsed converts an editor round-trip result into update
// options. Every field is applied: the editor shows the full task, so what
// comes back is the whole intended state.
func updateOptionsFromParsed(parsed *editor.ParsedTask) (task.UpdateOptions, error) {
	due, err := parsed.DueDate()
	if err != nil {
		return task.UpdateOptions{}, err
	}

	priority := task.Priority(parsed.Priority)
	opts := task.UpdateOptions{
		Title:       &parsed.Title,
		Description: &parsed.Description,
		Priority:    &priority,
		Completed:   parsed.Completed,
	}
	if due != nil {
		opts.DueDate = due
	} else {
		opts.ClearDue = true
	}
	return opts, nil
}
