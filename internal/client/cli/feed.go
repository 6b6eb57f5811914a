package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hbv501g/forumapp/internal/client/models"
	"github.com/hbv501g/forumapp/internal/client/services"
)

// showFeed prints one feed page. Usage: feed [hot|new|top] [page].
func (a *App) showFeed(ctx context.Context, args []string) {
	sort := models.SortHot
	page := 0

	if len(args) > 0 {
		switch strings.ToUpper(args[0]) {
		case string(models.SortHot):
			sort = models.SortHot
		case string(models.SortNew):
			sort = models.SortNew
		case string(models.SortTop):
			sort = models.SortTop
		default:
			fmt.Println("Usage: feed [hot|new|top] [page]")
			return
		}
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			fmt.Println("Usage: feed [hot|new|top] [page]")
			return
		}
		page = n
	}

	result, err := a.forum.GetFeed(ctx, sort, page, services.DefaultFeedSize)
	if err != nil {
		fmt.Println(err)
		return
	}

	if len(result.Items) == 0 {
		fmt.Println("No posts.")
		return
	}
	for _, post := range result.Items {
		fmt.Printf("[%s] %s  (%s in %s, score %d)\n",
			post.ID, post.Title, post.Author, post.Community, post.Score)
	}
	fmt.Printf("page %d of %d (%d posts total)\n",
		result.Page+1, result.TotalPages, result.TotalElements)
}
