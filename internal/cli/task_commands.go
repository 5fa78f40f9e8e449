package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"task-tracker/internal/api"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/report"
)

func (r *RootCommand) taskCommands() []*cobra.Command {
	return []*cobra.Command{
		r.addCommand(),
		r.listCommand(),
		r.currentCommand(),
		r.toggleCommand(),
		r.doneCommand(),
		r.editCommand(),
		r.deleteCommand(),
	}
}

func (r *RootCommand) addCommand() *cobra.Command {
	var (
		description string
		projectID   string
		taskType    string
		priority    string
		date        string
		intervals   []string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a task",
		Long: `Create a task. With --interval the task is backfilled: it is
created already done, with its time logs filled in from the given
HH:mm-HH:mm intervals on --date (default today).

Examples:
  tracker add "Review design doc" --priority high
  tracker add "Incident call" --interval 14:00-15:30 --date 2025-03-10`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logIntervals, err := parseIntervals(date, intervals)
			if err != nil {
				return r.errorHandler.Handle("add task", err)
			}

			task, err := r.api.CreateTask(api.CreateTaskParams{
				Title:       strings.Join(args, " "),
				Description: description,
				ProjectID:   projectID,
				Type:        taskType,
				Priority:    domain.Priority(priority),
				Intervals:   logIntervals,
			})
			if err != nil {
				return r.errorHandler.Handle("add task", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created task: %s\n", task.Title)
			printTaskLine(cmd.OutOrStdout(), task)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&projectID, "project", "", "Project ID")
	cmd.Flags().StringVar(&taskType, "type", "", "Task type (free-form label, e.g. work, meeting)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: low, medium, or high")
	cmd.Flags().StringVar(&date, "date", "", "Day for backfilled intervals (YYYY-MM-DD, default today)")
	cmd.Flags().StringArrayVar(&intervals, "interval", nil, "Backfill interval as HH:mm-HH:mm (repeatable)")
	return cmd
}

func (r *RootCommand) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks by priority, then recency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printTaskList(cmd.OutOrStdout(), r.api.ListTasks())
			return nil
		},
	}
}

func (r *RootCommand) currentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the task being worked on",
		Long: `Show the task the user is most plausibly working on: the task
with a running log if there is one, otherwise the most recently
touched in-progress task.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current := r.api.CurrentTask()
			if current == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No active task")
				return nil
			}
			printTaskLine(cmd.OutOrStdout(), *current)
			return nil
		},
	}
}

func (r *RootCommand) toggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [task id]",
		Short: "Start or stop time tracking on a task",
		Long: `Start or stop time tracking on a task. Starting a task stops
whichever task was tracking before, so at most one task tracks at a
time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := r.api.ToggleTask(args[0])
			if err != nil {
				return r.errorHandler.Handle("toggle task", err)
			}

			if task.Tracking {
				fmt.Fprintf(cmd.OutOrStdout(), "Started tracking: %s\n", task.Title)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Stopped tracking: %s (%s total)\n",
					task.Title, formatDuration(task.Total))
			}
			return nil
		},
	}
}

func (r *RootCommand) doneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "done [task id]",
		Short: "Mark a task done",
		Long:  "Mark a task done, stopping its running log if it has one.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			done := domain.StatusDone
			task, err := r.api.UpdateTask(args[0], api.UpdateTaskParams{Status: &done})
			if err != nil {
				return r.errorHandler.Handle("finish task", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Done: %s (%s total)\n", task.Title, formatDuration(task.Total))
			return nil
		},
	}
}

func (r *RootCommand) editCommand() *cobra.Command {
	var (
		title       string
		description string
		projectID   string
		taskType    string
		priority    string
		status      string
	)

	cmd := &cobra.Command{
		Use:   "edit [task id]",
		Short: "Edit a task's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := api.UpdateTaskParams{}
			if cmd.Flags().Changed("title") {
				params.Title = &title
			}
			if cmd.Flags().Changed("description") {
				params.Description = &description
			}
			if cmd.Flags().Changed("project") {
				params.ProjectID = &projectID
			}
			if cmd.Flags().Changed("type") {
				params.Type = &taskType
			}
			if cmd.Flags().Changed("priority") {
				p := domain.Priority(priority)
				params.Priority = &p
			}
			if cmd.Flags().Changed("status") {
				s := domain.Status(status)
				params.Status = &s
			}

			task, err := r.api.UpdateTask(args[0], params)
			if err != nil {
				return r.errorHandler.Handle("edit task", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated task: %s\n", task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&projectID, "project", "", "New project ID")
	cmd.Flags().StringVar(&taskType, "type", "", "New task type")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority: low, medium, or high")
	cmd.Flags().StringVar(&status, "status", "", "New status: todo, in-progress, or done")
	return cmd
}

func (r *RootCommand) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [task id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.api.DeleteTask(args[0]); err != nil {
				return r.errorHandler.Handle("delete task", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted task")
			return nil
		},
	}
}

// parseIntervals resolves HH:mm-HH:mm interval specs against a date
// (default today) into concrete log intervals.
func parseIntervals(date string, specs []string) ([]domain.LogInterval, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	day := time.Now()
	if date != "" {
		parsed, err := report.ParseLocalDate(date)
		if err != nil {
			return nil, err
		}
		day = parsed
	}

	intervals := make([]domain.LogInterval, 0, len(specs))
	for _, spec := range specs {
		clock, err := parseClockSpec(spec)
		if err != nil {
			return nil, err
		}
		interval, err := clock.Materialize(day)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, interval)
	}
	return intervals, nil
}

func parseClockSpec(spec string) (domain.ClockInterval, error) {
	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 {
		return domain.ClockInterval{}, errors.NewValidationError(
			fmt.Sprintf("invalid interval %q, expected HH:mm-HH:mm", spec), nil)
	}
	return domain.ClockInterval{StartTime: parts[0], EndTime: parts[1]}, nil
}
