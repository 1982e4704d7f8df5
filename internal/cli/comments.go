package cli

import (
	"github.com/spf13/cobra"

	"postdeck/internal/cache"
	"postdeck/internal/format"
	"postdeck/internal/model"
	"postdeck/internal/mutate"
)

func newCommentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "List and mutate comments on a post",
	}
	cmd.AddCommand(newCommentsListCmd(app))
	cmd.AddCommand(newCommentsAddCmd(app))
	cmd.AddCommand(newCommentsUpdateCmd(app))
	cmd.AddCommand(newCommentsDeleteCmd(app))
	cmd.AddCommand(newCommentsLikeCmd(app))
	return cmd
}

func newCommentsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <post-id>",
		Short: "List the comments on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			postID, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := app.ctx(cmd)
			defer cancel()

			list, err := app.client().CommentsByPost(ctx, postID)
			if err != nil {
				return err
			}
			return format.WriteJSON(cmd.OutOrStdout(), list, app.PrettyJSON)
		},
	}
}

func newCommentsAddCmd(app *App) *cobra.Command {
	var body string
	cmd := &cobra.Command{
		Use:   "add <post-id>",
		Short: "Add a comment with a locally allocated id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			postID, err := parseID(args[0])
			if err != nil {
				return err
			}
			if body == "" {
				return errUsage("--body is required")
			}
			ctx, cancel := app.ctx(cmd)
			defer cancel()

			data := model.NewComment{Body: body, PostID: postID, UserID: app.UserID}
			var created model.Comment
			err = app.withSession(ctx, func(e *mutate.Engine) error {
				created = e.CreateComment(data).Comment
				_, err := app.client().CreateComment(ctx, data)
				return err
			})
			if err != nil {
				return err
			}
			return format.WriteJSON(cmd.OutOrStdout(), created, app.PrettyJSON)
		},
	}
	cmd.Flags().StringVar(&body, "body", "", "Comment body")
	return cmd
}

func newCommentsUpdateCmd(app *App) *cobra.Command {
	var body string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a comment body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if body == "" {
				return errUsage("--body is required")
			}
			ctx, cancel := app.ctx(cmd)
			defer cancel()

			updated, err := app.client().UpdateComment(ctx, id, body)
			if err != nil {
				return err
			}
			return format.WriteJSON(cmd.OutOrStdout(), updated, app.PrettyJSON)
		},
	}
	cmd.Flags().StringVar(&body, "body", "", "New body")
	return cmd
}

func newCommentsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := app.ctx(cmd)
			defer cancel()

			if model.IsRealCommentID(id) {
				if err := app.client().DeleteComment(ctx, id); err != nil {
					return err
				}
			}
			return format.WriteJSON(cmd.OutOrStdout(), map[string]any{"id": id, "deleted": true}, app.PrettyJSON)
		},
	}
}

func newCommentsLikeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "like <post-id> <id>",
		Short: "Toggle the like on a comment",
		Long: "Toggles the persisted per-user liked state and PATCHes the " +
			"adjusted absolute counter. Running it twice returns the counter " +
			"to where it started.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			postID, err := parseID(args[0])
			if err != nil {
				return err
			}
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			ctx, cancel := app.ctx(cmd)
			defer cancel()

			// Seed a throwaway cache with the live comment page so the
			// engine's toggle sees the current counter.
			list, err := app.client().CommentsByPost(ctx, postID)
			if err != nil {
				return err
			}

			var out model.Comment
			err = app.withSession(ctx, func(e *mutate.Engine) error {
				e.Cache.SetComments(postID, list)
				res, err := e.ToggleCommentLike(postID, id)
				if err != nil {
					return err
				}
				if model.IsRealCommentID(id) {
					if _, err := app.client().LikeComment(ctx, id, res.Likes); err != nil {
						return err
					}
				}
				out, _ = cache.FindComment(e.Cache, postID, id)
				return nil
			})
			if err != nil {
				return err
			}
			return format.WriteJSON(cmd.OutOrStdout(), out, app.PrettyJSON)
		},
	}
}
