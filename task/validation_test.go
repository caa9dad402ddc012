package task

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validTestTask() Task {
	now := time.Now()
	return Task{
		ID:        1,
		Title:     "Valid task",
		Priority:  PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestValidateTask(t *testing.T) {
	valid := validTestTask()
	if err := ValidateTask(&valid); err != nil {
		t.Errorf("expected valid task, got %v", err)
	}
}

func TestValidateTask_NonPositiveID(t *testing.T) {
	item := validTestTask()
	item.ID = 0
	if err := ValidateTask(&item); !errors.Is(err, ErrNonPositiveID) {
		t.Errorf("expected ErrNonPositiveID, got %v", err)
	}
}

func TestValidateTask_InvalidPriority(t *testing.T) {
	item := validTestTask()
	item.Priority = "urgent"
	if err := ValidateTask(&item); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestValidateTask_MissingCreatedAt(t *testing.T) {
	item := validTestTask()
	item.CreatedAt = time.Time{}
	if err := ValidateTask(&item); !errors.Is(err, ErrMissingCreatedAt) {
		t.Errorf("expected ErrMissingCreatedAt, got %v", err)
	}
}

func TestValidateTask_CompletedConsistency(t *testing.T) {
	completed := validTestTask()
	completed.Completed = true
	if err := ValidateTask(&completed); !errors.Is(err, ErrCompletedMissingTimestamp) {
		t.Errorf("expected ErrCompletedMissingTimestamp, got %v", err)
	}

	open := validTestTask()
	now := time.Now()
	open.CompletedAt = &now
	if err := ValidateTask(&open); !errors.Is(err, ErrNotCompletedHasTimestamp) {
		t.Errorf("expected ErrNotCompletedHasTimestamp, got %v", err)
	}
}

func TestValidateSnapshot_DuplicateIDs(t *testing.T) {
	first := validTestTask()
	second := validTestTask()
	snap := Snapshot{Tasks: []Task{first, second}}

	if err := ValidateSnapshot(&snap); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

func TestValidatePriority_ErrorNamesValidValues(t *testing.T) {
	err := ValidatePriority("urgent")
	if err == nil {
		t.Fatal("expected error for invalid priority")
	}
	for _, valid := range ValidPriorities() {
		if !strings.Contains(err.Error(), string(valid)) {
			t.Errorf("expected error to mention %q, got %v", valid, err)
		}
	}
}
