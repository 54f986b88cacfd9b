package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/taskdeck/taskdeck/internal/client/models"
)

// Categories lists the user's categories.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := c.doJSON(ctx, http.MethodGet, "/categories", nil, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// Category fetches a single category by id.
func (c *Client) Category(ctx context.Context, id int64) (*models.Category, error) {
	var cat models.Category
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/categories/%d", id), nil, nil, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, req models.CategoryCreate) (*models.Category, error) {
	var cat models.Category
	if err := c.doJSON(ctx, http.MethodPost, "/categories", nil, req, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// UpdateCategory applies partial changes to a category.
func (c *Client) UpdateCategory(ctx context.Context, id int64, req models.CategoryUpdate) (*models.Category, error) {
	var cat models.Category
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), nil, req, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil, nil)
}
