package task

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// AddOptions configures a new task.
type AddOptions struct {
	// Description provides additional context.
	Description string

	// Priority is the importance level. Defaults to PriorityMedium when empty.
	Priority Priority

	// DueDate is the optional calendar date the task is due.
	DueDate *time.Time
}

// Add creates a new task with the given title and appends it to the store.
func (s *Store) Add(title string, opts AddOptions) (*Task, error) {
	if opts.Priority == "" {
		opts.Priority = PriorityMedium
	}
	priority, err := normalizePriorityInput(opts.Priority)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	created := Task{
		Title:       title,
		Description: opts.Description,
		Priority:    priority,
		DueDate:     opts.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.mutate(func(snap *Snapshot) error {
		created.ID = snap.nextID()
		snap.Tasks = append(snap.Tasks, created)
		snap.NextID = created.ID + 1
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("write snapshot: %w", err)
	}

	return &created, nil
}

// UpdateOptions configures fields to update on tasks.
// Nil pointers mean "don't update this field".
type UpdateOptions struct {
	Title       *string
	Description *string
	Priority    *Priority
	DueDate     *time.Time
	ClearDue    bool
	Completed   *bool
}

// Update updates one or more tasks with the given options and returns the
// updated tasks. A task's UpdatedAt only moves when a field actually changed,
// which keeps Complete idempotent.
func (s *Store) Update(ids []int, opts UpdateOptions) ([]Task, error) {
	if opts.Priority != nil {
		normalized, err := normalizePriorityInput(*opts.Priority)
		if err != nil {
			return nil, err
		}
		opts.Priority = &normalized
	}

	var updated []Task
	err := s.mutate(func(snap *Snapshot) error {
		idSet := make(map[int]bool, len(ids))
		for _, id := range ids {
			idSet[id] = true
		}

		now := time.Now()
		for i := range snap.Tasks {
			t := &snap.Tasks[i]
			if !idSet[t.ID] {
				continue
			}
			delete(idSet, t.ID)

			if applyUpdate(t, opts, now) {
				t.UpdatedAt = now
			}

			if err := ValidateTask(t); err != nil {
				return fmt.Errorf("validate task %d: %w", t.ID, err)
			}

			updated = append(updated, *t)
		}

		return missingTaskIDsError(idSet)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// applyUpdate applies opts to t and reports whether anything changed.
func applyUpdate(t *Task, opts UpdateOptions, now time.Time) bool {
	changed := false

	if opts.Title != nil && *opts.Title != t.Title {
		t.Title = *opts.Title
		changed = true
	}
	if opts.Description != nil && *opts.Description != t.Description {
		t.Description = *opts.Description
		changed = true
	}
	if opts.Priority != nil && *opts.Priority != t.Priority {
		t.Priority = *opts.Priority
		changed = true
	}
	if opts.ClearDue {
		if t.DueDate != nil {
			t.DueDate = nil
			changed = true
		}
	} else if opts.DueDate != nil {
		if t.DueDate == nil || !t.DueDate.Equal(*opts.DueDate) {
			due := *opts.DueDate
			t.DueDate = &due
			changed = true
		}
	}
	if opts.Completed != nil && *opts.Completed != t.Completed {
		t.Completed = *opts.Completed
		if t.Completed {
			t.CompletedAt = &now
		} else {
			t.CompletedAt = nil
		}
		changed = true
	}

	return changed
}

// Complete marks one or more tasks as completed. Completing an already
// completed task is a no-op.
func (s *Store) Complete(ids []int) ([]Task, error) {
	completed := true
	return s.Update(ids, UpdateOptions{Completed: &completed})
}

// Reopen clears the completed flag on one or more tasks.
func (s *Store) Reopen(ids []int) ([]Task, error) {
	completed := false
	return s.Update(ids, UpdateOptions{Completed: &completed})
}

// Delete removes one or more tasks from the store and returns the removed
// tasks. When any ID is missing, nothing is removed.
func (s *Store) Delete(ids []int) ([]Task, error) {
	var removed []Task
	err := s.mutate(func(snap *Snapshot) error {
		idSet := make(map[int]bool, len(ids))
		for _, id := range ids {
			idSet[id] = true
		}

		kept := snap.Tasks[:0]
		for _, t := range snap.Tasks {
			if idSet[t.ID] {
				delete(idSet, t.ID)
				removed = append(removed, t)
				continue
			}
			kept = append(kept, t)
		}

		if err := missingTaskIDsError(idSet); err != nil {
			return err
		}

		snap.Tasks = kept
		return nil
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}

// Show returns the full details of one or more tasks.
func (s *Store) Show(ids []int) ([]Task, error) {
	snap, err := s.load()
	if err != nil {
		return nil, err
	}

	byID := make(map[int]*Task, len(snap.Tasks))
	for i := range snap.Tasks {
		byID[snap.Tasks[i].ID] = &snap.Tasks[i]
	}

	result := make([]Task, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	missing := make(map[int]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		t, ok := byID[id]
		if !ok {
			missing[id] = true
			continue
		}
		result = append(result, *t)
	}

	if err := missingTaskIDsError(missing); err != nil {
		return nil, err
	}

	return result, nil
}

// ListFilter configures which tasks to return.
type ListFilter struct {
	// IncludeCompleted includes completed tasks. Default is false.
	IncludeCompleted bool

	// Priority filters by exact priority match.
	Priority *Priority

	// Overdue filters to tasks past their due date and not completed.
	Overdue bool
}

// List returns tasks matching the filter, ordered by descending priority and
// then by creation order.
func (s *Store) List(filter ListFilter) ([]Task, error) {
	if filter.Priority != nil {
		normalized, err := normalizePriorityInput(*filter.Priority)
		if err != nil {
			return nil, err
		}
		filter.Priority = &normalized
	}

	snap, err := s.load()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := []Task{}
	for _, t := range snap.Tasks {
		if t.Completed && !filter.IncludeCompleted {
			continue
		}
		if filter.Priority != nil && t.Priority != *filter.Priority {
			continue
		}
		if filter.Overdue && !Overdue(t, now) {
			continue
		}
		result = append(result, t)
	}

	sort.SliceStable(result, func(i, j int) bool {
		ri, rj := PriorityRank(result[i].Priority), PriorityRank(result[j].Priority)
		if ri != rj {
			return ri < rj
		}
		// Secondary sort by creation order (oldest first)
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// Search returns tasks whose title or description contains the query,
// case-insensitively, in store order.
func (s *Store) Search(query string) ([]Task, error) {
	snap, err := s.load()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)

	result := []Task{}
	for _, t := range snap.Tasks {
		if strings.Contains(strings.ToLower(t.Title), needle) ||
			strings.Contains(strings.ToLower(t.Description), needle) {
			result = append(result, t)
		}
	}

	return result, nil
}

func missingTaskIDsError(missing map[int]bool) error {
	if len(missing) == 0 {
		return nil
	}

	ids := make([]int, 0, len(missing))
	for id := range missing {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	formatted := make([]string, 0, len(ids))
	for _, id := range ids {
		formatted = append(formatted, strconv.Itoa(id))
	}
	return fmt.Errorf("%w: %s", ErrTaskNotFound, strings.Join(formatted, ", "))
}
