package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/taskdeck/taskdeck/internal/client/models"
)

// Tasks lists the user's tasks, optionally narrowed by filter.
func (c *Client) Tasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	query := url.Values{}
	if filter.IsCompleted != nil {
		query.Set("is_completed", strconv.FormatBool(*filter.IsCompleted))
	}
	if filter.CategoryID != nil {
		query.Set("category_id", strconv.FormatInt(*filter.CategoryID, 10))
	}
	if filter.Priority != "" {
		query.Set("priority", string(filter.Priority))
	}

	var tasks []models.Task
	if err := c.doJSON(ctx, http.MethodGet, "/tasks", query, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Task fetches a single task by id.
func (c *Client) Task(ctx context.Context, id int64) (*models.Task, error) {
	var task models.Task
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", id), nil, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a task.
func (c *Client) CreateTask(ctx context.Context, req models.TaskCreate) (*models.Task, error) {
	var task models.Task
	if err := c.doJSON(ctx, http.MethodPost, "/tasks", nil, req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies partial changes to a task.
func (c *Client) UpdateTask(ctx context.Context, id int64, req models.TaskUpdate) (*models.Task, error) {
	var task models.Task
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), nil, req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CompleteTask marks a task as done.
func (c *Client) CompleteTask(ctx context.Context, id int64) (*models.Task, error) {
	var task models.Task
	if err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/tasks/%d/complete", id), nil, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// IncompleteTask marks a task as pending again.
func (c *Client) IncompleteTask(ctx context.Context, id int64) (*models.Task, error) {
	var task models.Task
	if err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/tasks/%d/incomplete", id), nil, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil, nil)
}

// TaskStats fetches the dashboard summary.
func (c *Client) TaskStats(ctx context.Context) (*models.TaskStats, error) {
	var stats models.TaskStats
	if err := c.doJSON(ctx, http.MethodGet, "/tasks/stats/summary", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ImportTasksExcel uploads a spreadsheet for bulk task creation and
// returns the backend's acknowledgement message, if any.
func (c *Client) ImportTasksExcel(ctx context.Context, filename string, file []byte) (string, error) {
	var ack struct {
		Message string `json:"message"`
	}
	err := c.doMultipart(ctx, http.MethodPost, "/tasks/import-excel", "file", filename, file, &ack)
	if err != nil {
		return "", err
	}
	return ack.Message, nil
}

// DownloadTaskTemplate fetches the import template spreadsheet as raw
// bytes; the client never parses the workbook itself.
func (c *Client) DownloadTaskTemplate(ctx context.Context) ([]byte, error) {
	return c.doBytes(ctx, "/tasks/download-template")
}
