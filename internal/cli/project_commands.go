package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-tracker/internal/domain"
)

func (r *RootCommand) projectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	var color string
	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := r.api.CreateProject(args[0], color)
			if err != nil {
				return r.errorHandler.Handle("add project", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project: %s (%s)\n", project.Name, project.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&color, "color", "", "Display color as #rrggbb")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects := r.api.ListProjects()
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects")
				return nil
			}
			for _, project := range projects {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", project.ID, project.Name)
			}
			return nil
		},
	}

	var editColor string
	editCmd := &cobra.Command{
		Use:   "edit [project id] [name]",
		Short: "Rename a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := r.api.UpdateProject(args[0], args[1], editColor)
			if err != nil {
				return r.errorHandler.Handle("edit project", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated project: %s\n", project.Name)
			return nil
		},
	}
	editCmd.Flags().StringVar(&editColor, "color", "", "Display color as #rrggbb")

	deleteCmd := &cobra.Command{
		Use:   "delete [project id]",
		Short: "Delete a project",
		Long: `Delete a project. Tasks keep their project reference and show as
"` + domain.UnknownProjectName + `" afterwards.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.api.DeleteProject(args[0]); err != nil {
				return r.errorHandler.Handle("delete project", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted project")
			return nil
		},
	}

	cmd.AddCommand(addCmd, listCmd, editCmd, deleteCmd)
	return cmd
}

func (r *RootCommand) standardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standard",
		Short: "Manage standard-task templates",
		Long: `Manage standard-task templates: recurring items like daily
standups that carry wall-clock intervals instead of dated logs. Seed
a template to create a completed task with its logs placed on a
specific day.`,
	}

	var (
		projectID string
		taskType  string
		priority  string
		intervals []string
	)
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clocks := make([]domain.ClockInterval, 0, len(intervals))
			for _, spec := range intervals {
				clock, err := parseClockSpec(spec)
				if err != nil {
					return r.errorHandler.Handle("add standard task", err)
				}
				clocks = append(clocks, clock)
			}

			standard, err := r.api.CreateStandardTask(args[0], projectID, taskType, domain.Priority(priority), clocks)
			if err != nil {
				return r.errorHandler.Handle("add standard task", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created standard task: %s (%s)\n", standard.Title, standard.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&projectID, "project", "", "Project ID")
	addCmd.Flags().StringVar(&taskType, "type", "", "Task type")
	addCmd.Flags().StringVar(&priority, "priority", "", "Priority: low, medium, or high")
	addCmd.Flags().StringArrayVar(&intervals, "interval", nil, "Interval as HH:mm-HH:mm (repeatable)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			standards := r.api.ListStandardTasks()
			if len(standards) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No standard tasks")
				return nil
			}
			for _, standard := range standards {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%d intervals)\n",
					standard.ID, standard.Title, len(standard.Intervals))
			}
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [standard id]",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.api.DeleteStandardTask(args[0]); err != nil {
				return r.errorHandler.Handle("delete standard task", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted standard task")
			return nil
		},
	}

	var seedDate string
	seedCmd := &cobra.Command{
		Use:   "seed [standard id]",
		Short: "Create a completed task from a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := r.resolveDate(seedDate)
			if err != nil {
				return r.errorHandler.Handle("seed standard task", err)
			}

			task, err := r.api.SeedStandardTask(args[0], day)
			if err != nil {
				return r.errorHandler.Handle("seed standard task", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded task: %s (%s)\n", task.Title, formatDuration(task.Total))
			return nil
		},
	}
	seedCmd.Flags().StringVar(&seedDate, "date", "", "Day to place the logs on (YYYY-MM-DD, default today)")

	cmd.AddCommand(addCmd, listCmd, deleteCmd, seedCmd)
	return cmd
}
