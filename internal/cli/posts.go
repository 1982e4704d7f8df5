package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"postdeck/internal/format"
	"postdeck/internal/model"
	"postdeck/internal/mutate"
	"postdeck/internal/params"
)

func newPostsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List, search and mutate posts",
	}
	cmd.AddCommand(newPostsListCmd(app))
	cmd.AddCommand(newPostsGetCmd(app))
	cmd.AddCommand(newPostsSearchCmd(app))
	cmd.AddCommand(newPostsAddCmd(app))
	cmd.AddCommand(newPostsUpdateCmd(app))
	cmd.AddCommand(newPostsDeleteCmd(app))
	return cmd
}

func newPostsListCmd(app *App) *cobra.Command {
	p := params.Default()
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a page of posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.ctx(cmd)
			defer cancel()

			var (
				list model.PostList
				err  error
			)
			if tag := p.TagFilter(); tag != "" {
				list, err = app.client().PostsByTag(ctx, tag)
			} else {
				list, err = app.client().PostList(ctx, p)
			}
			if err != nil {
				return err
			}
			return format.WriteJSON(cmd.OutOrStdout(), list, app.PrettyJSON)
		},
	}
	cmd.Flags().IntVar(&p.Skip, "skip", params.DefaultSkip, "Offset into the listing")
	cmd.Flags().IntVar(&p.Limit, "limit", params.DefaultLimit, "Page size")
	cmd.Flags().StringVar(&p.Tag, "tag", "", "Only posts with this tag (single-page mode)")
	cmd.Flags().StringVar(&p.SortBy, "sort", "", "Sort field (id|title|reactions)")
	cmd.Flags().StringVar(&p.Order, "order", params.DefaultOrder, "Sort order (asc|desc)")
	return cmd
}

func newPostsGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch one post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := app.ctx(cmd)
			defer cancel()

			post, err := app.client().PostByID(ctx, id)
			if err != nil {
				return err
			}
			return format.WriteJSON(cmd.OutOrStdout(), post, app.PrettyJSON)
		},
	}
}

func newPostsSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text search over posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.ctx(cmd)
			defer cancel()

			list, err := app.client().PostSearch(ctx, args[0])
			if err != nil {
				return err
			}
			return format.WriteJSON(cmd.OutOrStdout(), list, app.PrettyJSON)
		},
	}
}

func newPostsAddCmd(app *App) *cobra.Command {
	var (
		title string
		body  string
		tags  []string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a post with a locally allocated id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" || body == "" {
				return errUsage("--title and --body are required")
			}
			ctx, cancel := app.ctx(cmd)
			defer cancel()

			data := model.NewPost{Title: title, Body: body, UserID: app.UserID, Tags: tags}
			var created model.Post
			err := app.withSession(ctx, func(e *mutate.Engine) error {
				created = e.CreatePost(data).Post
				// The mock API echoes the create but never stores it; the
				// local record with the synthetic id is what counts.
				_, err := app.client().CreatePost(ctx, data)
				return err
			})
			if err != nil {
				return err
			}
			return format.WriteJSON(cmd.OutOrStdout(), created, app.PrettyJSON)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Post title")
	cmd.Flags().StringVar(&body, "body", "", "Post body")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Post tags")
	return cmd
}

func newPostsUpdateCmd(app *App) *cobra.Command {
	var (
		title string
		body  string
		tags  []string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a post and mark it locally modified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			u := model.UpdatePost{}
			if cmd.Flags().Changed("title") {
				u.Title = &title
			}
			if cmd.Flags().Changed("body") {
				u.Body = &body
			}
			if cmd.Flags().Changed("tags") {
				u.Tags = &tags
			}
			if u.Title == nil && u.Body == nil && u.Tags == nil {
				return errUsage("nothing to update; pass --title, --body or --tags")
			}

			ctx, cancel := app.ctx(cmd)
			defer cancel()

			var updated model.Post
			err = app.withSession(ctx, func(e *mutate.Engine) error {
				if model.IsRealPostID(id) {
					e.Modified.Mark(id)
				}
				updated, err = app.client().UpdatePost(ctx, id, u)
				return err
			})
			if err != nil {
				return err
			}
			return format.WriteJSON(cmd.OutOrStdout(), updated, app.PrettyJSON)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&body, "body", "", "New body")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "New tags")
	return cmd
}

func newPostsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := app.ctx(cmd)
			defer cancel()

			err = app.withSession(ctx, func(e *mutate.Engine) error {
				e.Modified.Unmark(id)
				if !model.IsRealPostID(id) {
					// Nothing server-side to delete.
					return nil
				}
				return app.client().DeletePost(ctx, id)
			})
			if err != nil {
				return err
			}
			return format.WriteJSON(cmd.OutOrStdout(), map[string]any{"id": id, "deleted": true}, app.PrettyJSON)
		},
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, errUsage("invalid id: " + s)
	}
	return id, nil
}
