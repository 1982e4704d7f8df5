package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"postdeck/internal/api"
	"postdeck/internal/config"
	"postdeck/internal/tui"
)

// App carries resolved configuration into subcommands.
type App struct {
	Config     config.Config
	PrettyJSON bool
	// UserID is who scripted writes are attributed to.
	UserID int
}

func NewRootCmd() (*cobra.Command, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	app := &App{Config: cfg, UserID: 1}

	cmd := &cobra.Command{
		Use:          "postdeck",
		Short:        "Browse and edit dummyjson posts with an optimistic local cache",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  postdeck

  # Scriptable commands
  postdeck posts list --limit 5
  postdeck posts search love
  postdeck posts add --title "hi" --body "there"
  postdeck comments list 7
  postdeck tags
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return tui.Run(app.Config)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Config.BaseURL, "base-url", cfg.BaseURL, "API base URL")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().IntVar(&app.UserID, "user", 1, "User id for created posts/comments")

	cmd.AddCommand(newPostsCmd(app))
	cmd.AddCommand(newCommentsCmd(app))
	cmd.AddCommand(newUsersCmd(app))
	cmd.AddCommand(newTagsCmd(app))

	return cmd, nil
}

func (a *App) client() *api.Client {
	return api.New(a.Config.BaseURL, a.Config.Timeout)
}

func (a *App) ctx(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.Config.Timeout)
}
