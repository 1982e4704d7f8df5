package cli

import (
	"github.com/spf13/cobra"

	"postdeck/internal/format"
)

func newTagsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the available post tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.ctx(cmd)
			defer cancel()

			tags, err := app.client().Tags(ctx)
			if err != nil {
				return err
			}
			return format.WriteJSON(cmd.OutOrStdout(), tags, app.PrettyJSON)
		},
	}
}
