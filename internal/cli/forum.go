package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/mindcare/internal/api/request"
	"github.com/mcoot/mindcare/internal/api/response"
)

func newForumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forum",
		Short: "Peer forum commands",
	}

	cmd.AddCommand(newForumListCmd())
	cmd.AddCommand(newForumShowCmd())
	cmd.AddCommand(newForumPostCmd())
	cmd.AddCommand(newForumLikeCmd())
	cmd.AddCommand(newForumReplyCmd())

	return cmd
}

func newForumListCmd() *cobra.Command {
	var query, tag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts, newest first",
		RunE: withProfile(func(cmd *cobra.Command, args []string) error {
			params := url.Values{}
			if query != "" {
				params.Set("q", query)
			}
			if tag != "" {
				params.Set("tag", tag)
			}
			path := "/api/v1/forum/posts"
			if len(params) > 0 {
				path += "?" + params.Encode()
			}

			var result response.PostList
			if err := client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}
			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Search title, content and tags")
	cmd.Flags().StringVar(&tag, "tag", "", "Only posts with this tag")

	return cmd
}

func newForumShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <post-id>",
		Short: "Show a post with its replies",
		Args:  cobra.ExactArgs(1),
		RunE: withProfile(func(cmd *cobra.Command, args []string) error {
			var result response.Post
			if err := client.Get(cmd.Context(), "/api/v1/forum/posts/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}
			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		}),
	}
}

func newForumPostCmd() *cobra.Command {
	var req request.CreatePostRequest

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Start a new thread",
		RunE: withProfile(func(cmd *cobra.Command, args []string) error {
			var result response.Post
			if err := client.Post(cmd.Context(), "/api/v1/forum/posts", req, &result); err != nil {
				return err
			}
			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		}),
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "Post title (required)")
	cmd.Flags().StringVar(&req.Content, "content", "", "Post content (required)")
	cmd.Flags().StringSliceVar(&req.Tags, "tags", nil, "Comma separated tags")
	cmd.Flags().BoolVar(&req.Anonymous, "anonymous", false, "Post without your name")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newForumLikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <post-id>",
		Short: "Like a post, or unlike it if already liked",
		Args:  cobra.ExactArgs(1),
		RunE: withProfile(func(cmd *cobra.Command, args []string) error {
			var result response.Post
			if err := client.Post(cmd.Context(), "/api/v1/forum/posts/"+url.PathEscape(args[0])+"/like", nil, &result); err != nil {
				return err
			}
			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		}),
	}
}

func newForumReplyCmd() *cobra.Command {
	var req request.ReplyRequest

	cmd := &cobra.Command{
		Use:   "reply <post-id>",
		Short: "Reply to a post",
		Args:  cobra.ExactArgs(1),
		RunE: withProfile(func(cmd *cobra.Command, args []string) error {
			var result response.Reply
			if err := client.Post(cmd.Context(), "/api/v1/forum/posts/"+url.PathEscape(args[0])+"/replies", req, &result); err != nil {
				return err
			}
			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		}),
	}

	cmd.Flags().StringVar(&req.Content, "content", "", "Reply text (required)")
	cmd.Flags().BoolVar(&req.Anonymous, "anonymous", false, "Reply without your name")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}
