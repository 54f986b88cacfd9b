package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/taskdeck/taskdeck/internal/client/api"
	"github.com/taskdeck/taskdeck/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and attempts to create a new
// account. Registration never logs the new account in; the user is told to
// login afterwards.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name (optional)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	req := models.UserRegister{Username: userName, Email: email, Password: password, FullName: fullName}

	if _, err := a.auth.Register(ctx, req); err != nil {
		a.printError(err)
		return err
	}

	fmt.Println("Account created. You can now login.")
	return nil
}

// Login prompts for credentials and tries to authenticate. On success the
// user lands on the screen a denied navigation recorded earlier, or the
// dashboard.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	if _, err := a.auth.Login(ctx, userName, password); err != nil {
		a.printError(err)
		return err
	}

	fmt.Println("Login successful!")
	a.navigator.Go(a.navigator.ConsumeReturnTo())
	return nil
}

// Logout clears the session, including its persisted copy, and returns to
// the login screen. Safe to call when not logged in.
func (a *App) Logout(ctx context.Context) {
	a.auth.Logout(ctx)
	a.navigator.RedirectToLogin()
	fmt.Println("Logged out.")
}

func (a *App) whoami(ctx context.Context) {
	sess := a.sessions.Get()
	user := sess.User
	if user == nil {
		// The identity fetch after login may have failed; retry now.
		fetched, err := a.auth.FetchCurrentUser(ctx)
		if err != nil {
			a.printError(err)
			return
		}
		user = fetched
	}

	fmt.Printf("Username:  %s\n", user.Username)
	fmt.Printf("Email:     %s\n", user.Email)
	fmt.Printf("Name:      %s\n", user.DisplayName())
	if user.ProfilePicture != nil {
		fmt.Printf("Avatar:    %s\n", *user.ProfilePicture)
	}
	if expiry, ok := sess.Expiry(); ok {
		fmt.Printf("Token expires: %s\n", expiry.Local().Format("2006-01-02 15:04:05"))
	}
}

// printError renders an API error for the terminal, one line per field
// message when the backend returned a structured body.
func (a *App) printError(err error) {
	var ve *api.ValidationError
	switch {
	case errors.Is(err, api.ErrInvalidCredentials):
		fmt.Println("Invalid username or password.")
	case errors.Is(err, api.ErrAuthExpired):
		fmt.Println("Session expired, please login again.")
	case errors.Is(err, api.ErrUnavailable):
		fmt.Println("Server unavailable, try again later.")
		a.setMode(ModeOffline)
	case errors.As(err, &ve):
		if len(ve.Fields) == 0 {
			fmt.Println("Error:", ve.Error())
			return
		}
		for _, f := range ve.Fields {
			if f.Field != "" {
				fmt.Printf("Error: %s: %s\n", f.Field, f.Message)
			} else {
				fmt.Println("Error:", f.Message)
			}
		}
	default:
		fmt.Println("Error:", err.Error())
	}
}
