package report

import (
	"sort"
	"time"

	"task-tracker/internal/domain"
)

// TypeGroup is one bucket of the monthly completed-tasks report.
type TypeGroup struct {
	Type  string        `json:"type"`
	Tasks []domain.Task `json:"tasks"`
	Total time.Duration `json:"total"`
}

// MonthlyCompleted reports tasks completed in the calendar month
// containing ref, grouped by type. A task qualifies when it is done and
// its completion timestamp (latest finish history event, else the end
// of its last log) falls inside the month; tasks with neither are
// excluded. Groups are sorted by type name, tasks within a group by
// completion time descending.
func MonthlyCompleted(tasks []domain.Task, ref time.Time, now time.Time) []TypeGroup {
	month := MonthWindow(ref)

	completedAt := make(map[string]time.Time)
	byType := make(map[string][]domain.Task)
	for _, task := range tasks {
		if task.Status != domain.StatusDone {
			continue
		}
		completed, ok := task.CompletionTime()
		if !ok || !month.Contains(completed) {
			continue
		}
		completedAt[task.ID] = completed
		byType[task.Type] = append(byType[task.Type], task)
	}

	groups := make([]TypeGroup, 0, len(byType))
	for taskType, grouped := range byType {
		sort.SliceStable(grouped, func(i, j int) bool {
			return completedAt[grouped[i].ID].After(completedAt[grouped[j].ID])
		})

		var total time.Duration
		for _, task := range grouped {
			total += task.TotalDuration(now)
		}

		groups = append(groups, TypeGroup{Type: taskType, Tasks: grouped, Total: total})
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Type < groups[j].Type })
	return groups
}
