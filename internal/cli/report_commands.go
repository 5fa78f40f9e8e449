package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"task-tracker/internal/api"
	"task-tracker/internal/report"
)

func (r *RootCommand) reportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report tracked time by project and type",
		Long: `Report tracked time inside a window, grouped by project and task
type. Only the portion of each log inside the window counts, so work
spanning midnight is split across days.`,
	}

	dayCmd := &cobra.Command{
		Use:   "day [date]",
		Short: "Tracked time for one day (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := r.api.DayReport(optionalArg(args))
			if err != nil {
				return r.errorHandler.Handle("build report", err)
			}
			printReport(cmd.OutOrStdout(), result)
			return nil
		},
	}

	weekCmd := &cobra.Command{
		Use:   "week [date]",
		Short: "Tracked time for a Monday-to-Sunday week",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := r.api.WeekReport(optionalArg(args))
			if err != nil {
				return r.errorHandler.Handle("build report", err)
			}
			printReport(cmd.OutOrStdout(), result)
			return nil
		},
	}

	monthCmd := &cobra.Command{
		Use:   "month [date]",
		Short: "Tracked time for a calendar month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := r.api.MonthReport(optionalArg(args))
			if err != nil {
				return r.errorHandler.Handle("build report", err)
			}
			printReport(cmd.OutOrStdout(), result)
			return nil
		},
	}

	rangeCmd := &cobra.Command{
		Use:   "range [start date] [end date]",
		Short: "Tracked time between two dates, inclusive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := r.api.RangeReport(args[0], args[1])
			if err != nil {
				return r.errorHandler.Handle("build report", err)
			}
			printReport(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.AddCommand(dayCmd, weekCmd, monthCmd, rangeCmd)
	return cmd
}

func (r *RootCommand) standupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "standup [date]",
		Short: "Group tasks for a daily standup",
		Long: `Group tasks into what was done yesterday, what was done today,
and what is planned for today. A task can appear in more than one
section.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			standup, err := r.api.Standup(optionalArg(args))
			if err != nil {
				return r.errorHandler.Handle("build standup", err)
			}

			out := cmd.OutOrStdout()
			printStandupSection(out, "Did yesterday:", standup.DidYesterday)
			printStandupSection(out, "Did today:", standup.DidToday)
			printStandupSection(out, "Will do today:", standup.WillDoToday)
			return nil
		},
	}
}

func (r *RootCommand) monthlyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "monthly [date]",
		Short: "List tasks completed in a month, grouped by type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := r.api.MonthlyCompleted(optionalArg(args))
			if err != nil {
				return r.errorHandler.Handle("build monthly report", err)
			}

			out := cmd.OutOrStdout()
			if len(groups) == 0 {
				fmt.Fprintln(out, "Nothing completed")
				return nil
			}
			for _, group := range groups {
				label := group.Type
				if label == "" {
					label = "(untyped)"
				}
				fmt.Fprintf(out, "%s (%s)\n", label, formatDuration(group.Total))
				for _, task := range group.Tasks {
					fmt.Fprintf(out, "  %s  %s\n", task.ID, task.Title)
				}
			}
			return nil
		},
	}
}

func printReport(out io.Writer, result api.DurationReport) {
	fmt.Fprintf(out, "%s to %s\n",
		result.Window.Start.Format("2006-01-02"),
		result.Window.End.Add(-time.Second).Format("2006-01-02"))
	fmt.Fprintf(out, "Total: %s\n", formatDuration(result.Total))

	if len(result.ByProject) > 0 {
		fmt.Fprintln(out, "By project:")
		printBuckets(out, result.ByProject)
	}
	if len(result.ByType) > 0 {
		fmt.Fprintln(out, "By type:")
		printBuckets(out, result.ByType)
	}
}

func printBuckets(out io.Writer, buckets []api.DurationBucket) {
	for _, bucket := range buckets {
		label := bucket.Label
		if label == "" {
			label = "(untyped)"
		}
		fmt.Fprintf(out, "  %-24s %s\n", label, formatDuration(bucket.Duration))
	}
}

func printStandupSection(out io.Writer, header string, tasks []api.TaskView) {
	fmt.Fprintln(out, header)
	if len(tasks) == 0 {
		fmt.Fprintln(out, "  (nothing)")
		return
	}
	for _, task := range tasks {
		fmt.Fprintf(out, "  %s\n", task.Title)
	}
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// resolveDate parses an optional YYYY-MM-DD argument, defaulting to
// today.
func (r *RootCommand) resolveDate(date string) (time.Time, error) {
	if date == "" {
		return time.Now(), nil
	}
	return report.ParseLocalDate(date)
}
