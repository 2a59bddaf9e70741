// Package backup reads and writes the JSON backup format. Import accepts
// both the structured backup object and the legacy bare task array, and
// tolerates markdown code fences around pasted JSON.
package backup

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/prioria/prioria/internal/task"
)

// File is the structured backup object.
type File struct {
	Tasks      []task.Task      `json:"tasks"`
	BrainState *task.BrainState `json:"brainState,omitempty"`
	Goals      []task.Goal      `json:"goals"`
	Version    int              `json:"version"`
	ExportedAt time.Time        `json:"exportedAt"`
}

// Export serializes a full snapshot.
func Export(tasks []task.Task, brain task.BrainState, goals []task.Goal, now time.Time) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	if goals == nil {
		goals = []task.Goal{}
	}
	f := File{
		Tasks:      tasks,
		BrainState: &brain,
		Goals:      goals,
		Version:    1,
		ExportedAt: now,
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}
	return data, nil
}

var (
	fenceOpen  = regexp.MustCompile("(?i)^```[a-z]*\\s*")
	fenceClose = regexp.MustCompile("\\s*```$")
)

// Parse decodes a backup. A bare JSON array is treated as a legacy export
// holding only tasks.
func Parse(data []byte) (*File, error) {
	cleaned := strings.TrimSpace(string(data))
	cleaned = fenceOpen.ReplaceAllString(cleaned, "")
	cleaned = fenceClose.ReplaceAllString(cleaned, "")

	if strings.HasPrefix(cleaned, "[") {
		var tasks []task.Task
		if err := json.Unmarshal([]byte(cleaned), &tasks); err != nil {
			return nil, fmt.Errorf("parse legacy task array: %w", err)
		}
		return &File{Tasks: tasks, Goals: []task.Goal{}}, nil
	}

	var f File
	if err := json.Unmarshal([]byte(cleaned), &f); err != nil {
		return nil, fmt.Errorf("parse backup: %w", err)
	}
	if f.Tasks == nil {
		return nil, fmt.Errorf("not a prioria backup: missing tasks")
	}
	return &f, nil
}
