package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mkern/taskbook/internal/config"
	"github.com/mkern/taskbook/internal/paths"
	"github.com/mkern/taskbook/internal/ui"
	"github.com/mkern/taskbook/task"
	"github.com/spf13/cobra"
)

// cliEnv bundles the loaded config and the open store for one command run.
type cliEnv struct {
	cfg   *config.Config
	store *task.Store
}

func loadEnv(cmd *cobra.Command) (*cliEnv, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}

	path := rootFile
	if path == "" {
		path = cfg.Tasks.File
	}

	store, err := task.Open(path)
	if err != nil {
		return nil, err
	}

	return &cliEnv{cfg: cfg, store: store}, nil
}

func (env *cliEnv) styles() ui.Styles {
	return ui.NewStyles(env.cfg.UI.NoColor)
}

// parseIDArgs converts positional arguments to task IDs.
func parseIDArgs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil || id < 1 {
			return nil, fmt.Errorf("invalid task id %q: expected a positive integer", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseDueFlag parses a --due value as a calendar date.
func parseDueFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	due, err := time.Parse(ui.DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q: expected YYYY-MM-DD", value)
	}
	return &due, nil
}

// resolveDescriptionFlag replaces a "-" description with stdin contents.
func resolveDescriptionFlag(cmd *cobra.Command, target *string, reader io.Reader) error {
	if !cmd.Flags().Changed("description") || *target != "-" {
		return nil
	}

	input, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("read description from stdin: %w", err)
	}

	*target = strings.TrimRight(string(input), "\r\n")
	return nil
}

func runTaskAction(cmd *cobra.Command, args []string, verb string, action func(*task.Store, []int) ([]task.Task, error)) error {
	ids, err := parseIDArgs(args)
	if err != nil {
		return err
	}

	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	items, err := action(env.store, ids)
	if err != nil {
		return err
	}

	printTaskActionResults(env, verb, items)
	return nil
}

func printTaskActionResults(env *cliEnv, verb string, items []task.Task) {
	styles := env.styles()
	for _, item := range items {
		fmt.Printf("%s task %s: %s\n", verb, styles.ID(strconv.Itoa(item.ID)), item.Title)
	}
}
