package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/taskdeck/taskdeck/internal/client/models"
)

// editProfile prompts for new profile values; empty input keeps the
// current one.
func (a *App) editProfile(ctx context.Context) {
	email, err := getSimpleText(a.reader, "New email (empty to keep)", os.Stdout)
	if err != nil {
		return
	}
	fullName, err := getSimpleText(a.reader, "New full name (empty to keep)", os.Stdout)
	if err != nil {
		return
	}
	phone, err := getSimpleText(a.reader, "New phone (empty to keep)", os.Stdout)
	if err != nil {
		return
	}
	bio, err := GetMultiline(a.reader, "New bio (empty to keep)", os.Stdout)
	if err != nil {
		return
	}

	var req models.ProfileUpdate
	if email != "" {
		req.Email = &email
	}
	if fullName != "" {
		req.FullName = &fullName
	}
	if phone != "" {
		req.Phone = &phone
	}
	if bio != "" {
		req.Bio = &bio
	}

	user, err := a.auth.UpdateProfile(ctx, req)
	if err != nil {
		a.printError(err)
		return
	}
	fmt.Println("Profile updated for", user.DisplayName())
}

func (a *App) changePassword(ctx context.Context) {
	password, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return
	}
	confirm, err := getPassword(os.Stdout, "Repeat new password")
	if err != nil {
		return
	}
	if password != confirm {
		fmt.Println("Passwords do not match.")
		return
	}

	if err := a.auth.ChangePassword(ctx, password); err != nil {
		a.printError(err)
		return
	}
	fmt.Println("Password changed.")
}

func (a *App) uploadAvatar(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: avatar <file>")
		return
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Println("Cannot read file:", err)
		return
	}

	user, err := a.auth.UploadProfilePicture(ctx, args[0], data)
	if err != nil {
		a.printError(err)
		return
	}
	if user.ProfilePicture != nil {
		fmt.Println("Avatar uploaded:", *user.ProfilePicture)
	} else {
		fmt.Println("Avatar uploaded.")
	}
}

func (a *App) deleteAvatar(ctx context.Context) {
	yes, err := Confirm(a.reader, "Remove your avatar?", os.Stdout)
	if err != nil || !yes {
		return
	}

	if _, err := a.auth.DeleteProfilePicture(ctx); err != nil {
		a.printError(err)
		return
	}
	fmt.Println("Avatar removed.")
}
