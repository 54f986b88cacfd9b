package api

import (
	"context"
	"net/http"

	"github.com/taskdeck/taskdeck/internal/client/models"
)

// UploadResponse is returned by the profile-picture upload endpoint.
type UploadResponse struct {
	ProfilePictureURL string `json:"profile_picture_url"`
}

// UpdateProfile applies partial profile changes to the current user.
func (c *Client) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodPut, "/users/me", nil, upd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword sets a new password for the current user.
func (c *Client) ChangePassword(ctx context.Context, newPassword string) error {
	body := map[string]string{"password": newPassword}
	return c.doJSON(ctx, http.MethodPut, "/users/me/change-password", nil, body, nil)
}

// UploadProfilePicture uploads an image as the user's profile picture.
func (c *Client) UploadProfilePicture(ctx context.Context, filename string, file []byte) (*UploadResponse, error) {
	var resp UploadResponse
	err := c.doMultipart(ctx, http.MethodPost, "/users/me/upload-profile-picture", "file", filename, file, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteProfilePicture removes the user's profile picture.
func (c *Client) DeleteProfilePicture(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodDelete, "/users/me/delete-profile-picture", nil, nil, nil)
}
