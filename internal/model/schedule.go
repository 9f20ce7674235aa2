package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrDuplicateTaskID  = errors.New("model: duplicate task id in schedule")
	ErrDuplicateBlockID = errors.New("model: duplicate block id in schedule")
	ErrInvalidBlockTime = errors.New("model: invalid block time")
)

var blockTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Task is one checkable item inside a routine block. Identity is the ID;
// Order is a display hint only.
type Task struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	MustDo bool   `json:"mustDo"`
	Order  int    `json:"order"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("model: task %s title is required", t.ID)
	}
	return nil
}

// RoutineBlock is a named, time-bounded group of tasks.
type RoutineBlock struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Order     int    `json:"order"`
	Tasks     []Task `json:"tasks"`
}

func (b RoutineBlock) Validate() error {
	if strings.TrimSpace(b.ID) == "" {
		return errors.New("model: block id is required")
	}
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("model: block %s name is required", b.ID)
	}
	if !blockTimePattern.MatchString(b.StartTime) {
		return fmt.Errorf("%w: block %s start %q", ErrInvalidBlockTime, b.ID, b.StartTime)
	}
	if !blockTimePattern.MatchString(b.EndTime) {
		return fmt.Errorf("%w: block %s end %q", ErrInvalidBlockTime, b.ID, b.EndTime)
	}
	for _, task := range b.Tasks {
		if err := task.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Schedule is the full user-defined routine: blocks in display order.
// Task IDs must be unique across the entire schedule because daily logs
// reference them without block qualification.
type Schedule struct {
	Blocks []RoutineBlock `json:"blocks"`
}

func (s Schedule) Validate() error {
	blockIDs := make(map[string]bool, len(s.Blocks))
	taskIDs := make(map[string]bool)
	for _, block := range s.Blocks {
		if err := block.Validate(); err != nil {
			return err
		}
		if blockIDs[block.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateBlockID, block.ID)
		}
		blockIDs[block.ID] = true
		for _, task := range block.Tasks {
			if taskIDs[task.ID] {
				return fmt.Errorf("%w: %s", ErrDuplicateTaskID, task.ID)
			}
			taskIDs[task.ID] = true
		}
	}
	return nil
}

// AllTasks flattens every block's tasks in block order. The returned order
// is the tie-break order used by the stats rankings.
func (s Schedule) AllTasks() []Task {
	out := make([]Task, 0)
	for _, block := range s.Blocks {
		out = append(out, block.Tasks...)
	}
	return out
}

// MustDoTasks returns the flattened subset with MustDo set.
func (s Schedule) MustDoTasks() []Task {
	out := make([]Task, 0)
	for _, block := range s.Blocks {
		for _, task := range block.Tasks {
			if task.MustDo {
				out = append(out, task)
			}
		}
	}
	return out
}

// TaskByID resolves a task id against the schedule.
func (s Schedule) TaskByID(id string) (Task, bool) {
	for _, block := range s.Blocks {
		for _, task := range block.Tasks {
			if task.ID == id {
				return task, true
			}
		}
	}
	return Task{}, false
}

// TaskCount is the total number of tasks across all blocks.
func (s Schedule) TaskCount() int {
	n := 0
	for _, block := range s.Blocks {
		n += len(block.Tasks)
	}
	return n
}

// Clone returns a deep copy so callers can hand schedules across the engine
// boundary without aliasing.
func (s Schedule) Clone() Schedule {
	out := Schedule{Blocks: make([]RoutineBlock, len(s.Blocks))}
	for i, block := range s.Blocks {
		copied := block
		copied.Tasks = make([]Task, len(block.Tasks))
		copy(copied.Tasks, block.Tasks)
		out.Blocks[i] = copied
	}
	return out
}
