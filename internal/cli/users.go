package cli

import (
	"github.com/spf13/cobra"

	"postdeck/internal/format"
)

func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Look up post authors",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all users (username and avatar only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.ctx(cmd)
			defer cancel()

			list, err := app.client().UserList(ctx)
			if err != nil {
				return err
			}
			return format.WriteJSON(cmd.OutOrStdout(), list, app.PrettyJSON)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Fetch one user's full profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := app.ctx(cmd)
			defer cancel()

			u, err := app.client().UserByID(ctx, id)
			if err != nil {
				return err
			}
			return format.WriteJSON(cmd.OutOrStdout(), u, app.PrettyJSON)
		},
	})

	return cmd
}
