package services

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/taskdeck/taskdeck/internal/client/models"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrBadPriority     = errors.New("priority must be low, medium or high")
	ErrNotASpreadsheet = errors.New("file must be an .xlsx spreadsheet")
)

// TasksAPI is the slice of the REST client the task service consumes.
type TasksAPI interface {
	Tasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	Task(ctx context.Context, id int64) (*models.Task, error)
	CreateTask(ctx context.Context, req models.TaskCreate) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, req models.TaskUpdate) (*models.Task, error)
	CompleteTask(ctx context.Context, id int64) (*models.Task, error)
	IncompleteTask(ctx context.Context, id int64) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	TaskStats(ctx context.Context) (*models.TaskStats, error)
	ImportTasksExcel(ctx context.Context, filename string, file []byte) (string, error)
	DownloadTaskTemplate(ctx context.Context) ([]byte, error)
}

// TaskService wraps the task endpoints with the cosmetic checks the
// screens used to do; the backend stays authoritative.
type TaskService interface {
	List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	Get(ctx context.Context, id int64) (*models.Task, error)
	Create(ctx context.Context, req models.TaskCreate) (*models.Task, error)
	Update(ctx context.Context, id int64, req models.TaskUpdate) (*models.Task, error)
	Complete(ctx context.Context, id int64) (*models.Task, error)
	Incomplete(ctx context.Context, id int64) (*models.Task, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.TaskStats, error)
	ImportExcel(ctx context.Context, filename string, file []byte) (string, error)
	DownloadTemplate(ctx context.Context) ([]byte, error)
}

type taskService struct {
	api TasksAPI
}

func NewTaskService(apiClient TasksAPI) TaskService {
	return &taskService{api: apiClient}
}

func (s *taskService) List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	return s.api.Tasks(ctx, filter)
}

func (s *taskService) Get(ctx context.Context, id int64) (*models.Task, error) {
	return s.api.Task(ctx, id)
}

func (s *taskService) Create(ctx context.Context, req models.TaskCreate) (*models.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	if req.Priority != "" && !req.Priority.Valid() {
		return nil, ErrBadPriority
	}
	return s.api.CreateTask(ctx, req)
}

func (s *taskService) Update(ctx context.Context, id int64, req models.TaskUpdate) (*models.Task, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, ErrTitleRequired
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return nil, ErrBadPriority
	}
	return s.api.UpdateTask(ctx, id, req)
}

func (s *taskService) Complete(ctx context.Context, id int64) (*models.Task, error) {
	return s.api.CompleteTask(ctx, id)
}

func (s *taskService) Incomplete(ctx context.Context, id int64) (*models.Task, error) {
	return s.api.IncompleteTask(ctx, id)
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteTask(ctx, id)
}

func (s *taskService) Stats(ctx context.Context) (*models.TaskStats, error) {
	return s.api.TaskStats(ctx)
}

func (s *taskService) ImportExcel(ctx context.Context, filename string, file []byte) (string, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return "", ErrNotASpreadsheet
	}
	return s.api.ImportTasksExcel(ctx, filepath.Base(filename), file)
}

func (s *taskService) DownloadTemplate(ctx context.Context) ([]byte, error) {
	return s.api.DownloadTaskTemplate(ctx)
}
