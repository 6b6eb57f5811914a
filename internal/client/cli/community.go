package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hbv501g/forumapp/internal/client/models"
	"github.com/hbv501g/forumapp/internal/client/services"
)

// listCommunities prints the communities seen in the current feed, marking
// the ones joined on this device.
func (a *App) listCommunities(ctx context.Context) {
	names, err := a.forum.ListCommunities(ctx, models.SortHot, services.DefaultCommunitiesSize)
	if err != nil {
		fmt.Println(err)
		return
	}
	if len(names) == 0 {
		fmt.Println("No communities yet.")
		return
	}

	for _, name := range names {
		marker := " "
		if a.forum.IsCommunityJoined(name) {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, name)
	}
	fmt.Println("(* joined on this device; 'join <name>' to toggle)")
}

// createCommunity prompts for a community name and optional description.
func (a *App) createCommunity(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Community name", os.Stdout)
	if err != nil {
		return
	}
	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return
	}

	confirmed, err := a.forum.CreateCommunity(ctx, name, description)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Community %s created.\n", confirmed)
}

// toggleMembership flips the device-local joined state of a community.
func (a *App) toggleMembership(name string) {
	a.forum.ToggleCommunityMembership(name)
	if a.forum.IsCommunityJoined(name) {
		fmt.Printf("Joined %s.\n", name)
	} else {
		fmt.Printf("Left %s.\n", name)
	}
}
