package cli

import (
	"context"
	"fmt"
	"os"
)

// showPost prints a post with its comments.
func (a *App) showPost(ctx context.Context, postID string) {
	post, err := a.forum.GetPost(ctx, postID)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%s\n%s in %s, score %d\n", post.Title, post.Author, post.Community, post.Score)
	if post.Body != "" {
		fmt.Println()
		fmt.Println(post.Body)
	}
	if post.URL != "" {
		fmt.Println("link:", post.URL)
	}

	comments, err := a.forum.GetComments(ctx, postID)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("\n%d comment(s)\n", len(comments))
	for _, comment := range comments {
		fmt.Printf("- %s (score %d): %s\n", comment.Author, comment.Score, comment.Body)
	}
}

// createPost prompts for a new text post and submits it.
func (a *App) createPost(ctx context.Context) {
	community, err := getSimpleText(a.reader, "Community name", os.Stdout)
	if err != nil {
		return
	}
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return
	}
	body, err := GetMultiline(a.reader, "Body", os.Stdout)
	if err != nil {
		return
	}

	post, err := a.forum.CreateTextPost(ctx, community, title, body)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Posted %s to %s.\n", post.ID, post.Community)
}

// createComment prompts for a comment body and submits it.
func (a *App) createComment(ctx context.Context, postID string) {
	body, err := GetMultiline(a.reader, "Comment", os.Stdout)
	if err != nil {
		return
	}

	if _, err := a.forum.CreateComment(ctx, postID, body); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Comment posted.")
}
