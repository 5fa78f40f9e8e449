package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"task-tracker/internal/api"
	"task-tracker/internal/domain"
)

// formatDuration renders a duration as "2h30m", dropping zero
// components. Sub-minute durations render as "0m".
func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	hours := int(d / time.Hour)
	minutes := int(d % time.Hour / time.Minute)

	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

func statusLabel(task api.TaskView) string {
	if task.Tracking {
		return "tracking"
	}
	return string(task.Status)
}

func printTaskLine(out io.Writer, task api.TaskView) {
	parts := []string{
		fmt.Sprintf("[%s]", statusLabel(task)),
		task.Title,
	}
	if task.ProjectID != "" {
		parts = append(parts, fmt.Sprintf("(%s)", task.ProjectName))
	}
	if task.Priority != "" && task.Priority != domain.PriorityLow {
		parts = append(parts, string(task.Priority))
	}
	if task.Total > 0 {
		parts = append(parts, formatDuration(task.Total))
	}
	fmt.Fprintf(out, "%s  %s\n", task.ID, strings.Join(parts, " "))
}

func printTaskList(out io.Writer, tasks []api.TaskView) {
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks")
		return
	}
	for _, task := range tasks {
		printTaskLine(out, task)
	}
}
