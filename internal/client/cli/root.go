package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if sess := a.forum.CurrentSession(context.Background()); sess != nil {
		return fmt.Sprintf("(%s)", sess.Username)
	}
	return ""
}

// Root runs the command loop until exit or EOF.
func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to ForumApp CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("forum %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.forum.CurrentSession(ctx) != nil {
				fmt.Println("Available commands: feed, post <id>, newpost, comment <post-id>, communities, newcommunity, join <name>, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, feed, post <id>, communities, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "feed":
			a.showFeed(ctx, args)
		case "post":
			if len(args) == 0 {
				fmt.Println("Usage: post <id>")
				continue
			}
			a.showPost(ctx, args[0])
		case "newpost":
			a.createPost(ctx)
		case "comment":
			if len(args) == 0 {
				fmt.Println("Usage: comment <post-id>")
				continue
			}
			a.createComment(ctx, args[0])
		case "communities":
			a.listCommunities(ctx)
		case "newcommunity":
			a.createCommunity(ctx)
		case "join":
			if len(args) == 0 {
				fmt.Println("Usage: join <name>")
				continue
			}
			a.toggleMembership(strings.Join(args, " "))
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
