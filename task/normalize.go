package task

import internalstrings "github.com/mkern/taskbook/internal/strings"

func normalizePriority(priority Priority) Priority {
	return Priority(internalstrings.NormalizeLowerTrimSpace(string(priority)))
}

func normalizePriorityInput(priority Priority) (Priority, error) {
	normalized := normalizePriority(priority)
	if err := ValidatePriority(normalized); err != nil {
		return "", err
	}
	return normalized, nil
}
