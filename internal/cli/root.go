package cli

import (
	"io"

	"github.com/spf13/cobra"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
)

// RootCommand represents the base command when called without any
// subcommands.
type RootCommand struct {
	cmd    *cobra.Command
	api    *api.API
	config *config.Config

	errorHandler *ErrorHandler
}

// NewRootCommand creates the root cobra command with all subcommands
// attached.
func NewRootCommand(apiInstance *api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:          apiInstance,
		config:       cfg,
		errorHandler: NewErrorHandler(),
	}

	root.cmd = &cobra.Command{
		Use:   "tracker",
		Short: "A command-line task and time tracking application",
		Long: `Task Tracker is a command-line application for managing tasks,
tracking the time spent on them, and reporting on that time.

EXAMPLES:
  tracker add "Review design doc" --priority high   # Create a task
  tracker toggle <id>                               # Start or stop tracking
  tracker current                                   # Show the active task
  tracker list                                      # List tasks by priority
  tracker done <id>                                 # Mark a task done
  tracker report day                                # Today's tracked time
  tracker report range 2025-03-01 2025-03-15        # Arbitrary date range
  tracker standup                                   # Standup summary
  tracker monthly                                   # Completed tasks this month

CONFIGURATION:
  Settings load from ~/.config/task-tracker/config.yaml and can be
  overridden with TRACKER_* environment variables (TRACKER_USER_ID,
  TRACKER_DATABASE_DIRECTORY, TRACKER_DATABASE_FILENAME).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.cmd.AddCommand(root.taskCommands()...)
	root.cmd.AddCommand(root.projectCommand(), root.standardCommand())
	root.cmd.AddCommand(root.reportCommand(), root.standupCommand(), root.monthlyCommand())

	return root
}

// Execute runs the root command.
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// SetArgs overrides command-line arguments, for tests.
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// SetOutput redirects command output, for tests.
func (r *RootCommand) SetOutput(out io.Writer) {
	r.cmd.SetOut(out)
	r.cmd.SetErr(out)
}
