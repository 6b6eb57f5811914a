package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates the account, then logs
// straight in with the same credentials.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.forum.RegisterAndLogin(ctx, username, email, password); err != nil {
		fmt.Println(err)
		return err
	}

	fmt.Println("Welcome,", username)
	return nil
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter username or email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.forum.Login(ctx, identifier, password); err != nil {
		fmt.Println(err)
		return err
	}

	fmt.Println("Logged in.")
	return nil
}

// Logout clears the session locally no matter what the server says.
func (a *App) Logout(ctx context.Context) {
	if err := a.forum.Logout(ctx); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Logged out.")
}
