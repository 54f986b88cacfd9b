package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/client/models"
)

type fakeTasksAPI struct {
	TaskRet     *models.Task
	TasksRet    []models.Task
	StatsRet    *models.TaskStats
	ImportRet   string
	TemplateRet []byte
	Err         error

	CreateCalls        int
	UpdateCalls        int
	LastCreate         models.TaskCreate
	LastUpdate         models.TaskUpdate
	LastID             int64
	LastFilter         models.TaskFilter
	LastImportFilename string
}

func (f *fakeTasksAPI) Tasks(_ context.Context, filter models.TaskFilter) ([]models.Task, error) {
	f.LastFilter = filter
	return f.TasksRet, f.Err
}

func (f *fakeTasksAPI) Task(_ context.Context, id int64) (*models.Task, error) {
	f.LastID = id
	return f.TaskRet, f.Err
}

func (f *fakeTasksAPI) CreateTask(_ context.Context, req models.TaskCreate) (*models.Task, error) {
	f.CreateCalls++
	f.LastCreate = req
	return f.TaskRet, f.Err
}

func (f *fakeTasksAPI) UpdateTask(_ context.Context, id int64, req models.TaskUpdate) (*models.Task, error) {
	f.UpdateCalls++
	f.LastID = id
	f.LastUpdate = req
	return f.TaskRet, f.Err
}

func (f *fakeTasksAPI) CompleteTask(_ context.Context, id int64) (*models.Task, error) {
	f.LastID = id
	return f.TaskRet, f.Err
}

func (f *fakeTasksAPI) IncompleteTask(_ context.Context, id int64) (*models.Task, error) {
	f.LastID = id
	return f.TaskRet, f.Err
}

func (f *fakeTasksAPI) DeleteTask(_ context.Context, id int64) error {
	f.LastID = id
	return f.Err
}

func (f *fakeTasksAPI) TaskStats(context.Context) (*models.TaskStats, error) {
	return f.StatsRet, f.Err
}

func (f *fakeTasksAPI) ImportTasksExcel(_ context.Context, filename string, file []byte) (string, error) {
	f.LastImportFilename = filename
	return f.ImportRet, f.Err
}

func (f *fakeTasksAPI) DownloadTaskTemplate(context.Context) ([]byte, error) {
	return f.TemplateRet, f.Err
}

func TestTaskCreate_RequiresTitle(t *testing.T) {
	f := &fakeTasksAPI{}
	svc := NewTaskService(f)

	_, err := svc.Create(context.Background(), models.TaskCreate{Title: "   "})
	require.ErrorIs(t, err, ErrTitleRequired)
	require.Equal(t, 0, f.CreateCalls)
}

func TestTaskCreate_RejectsUnknownPriority(t *testing.T) {
	f := &fakeTasksAPI{}
	svc := NewTaskService(f)

	_, err := svc.Create(context.Background(), models.TaskCreate{Title: "water plants", Priority: "urgent"})
	require.ErrorIs(t, err, ErrBadPriority)
	require.Equal(t, 0, f.CreateCalls)
}

func TestTaskCreate_Delegates(t *testing.T) {
	f := &fakeTasksAPI{TaskRet: &models.Task{ID: 7, Title: "water plants"}}
	svc := NewTaskService(f)

	task, err := svc.Create(context.Background(), models.TaskCreate{Title: "water plants", Priority: models.PriorityHigh})
	require.NoError(t, err)
	require.Equal(t, int64(7), task.ID)
	require.Equal(t, models.PriorityHigh, f.LastCreate.Priority)
}

func TestTaskUpdate_RejectsBlankTitle(t *testing.T) {
	f := &fakeTasksAPI{}
	svc := NewTaskService(f)

	blank := ""
	_, err := svc.Update(context.Background(), 7, models.TaskUpdate{Title: &blank})
	require.ErrorIs(t, err, ErrTitleRequired)
	require.Equal(t, 0, f.UpdateCalls)
}

func TestTaskUpdate_NilFieldsPassThrough(t *testing.T) {
	f := &fakeTasksAPI{TaskRet: &models.Task{ID: 7}}
	svc := NewTaskService(f)

	done := true
	_, err := svc.Update(context.Background(), 7, models.TaskUpdate{IsCompleted: &done})
	require.NoError(t, err)
	require.Equal(t, int64(7), f.LastID)
}

func TestTaskList_ForwardsFilter(t *testing.T) {
	f := &fakeTasksAPI{}
	svc := NewTaskService(f)

	pending := false
	_, err := svc.List(context.Background(), models.TaskFilter{IsCompleted: &pending, Priority: models.PriorityLow})
	require.NoError(t, err)
	require.Equal(t, models.PriorityLow, f.LastFilter.Priority)
	require.False(t, *f.LastFilter.IsCompleted)
}

func TestTaskImport_RejectsWrongExtension(t *testing.T) {
	f := &fakeTasksAPI{}
	svc := NewTaskService(f)

	_, err := svc.ImportExcel(context.Background(), "tasks.csv", []byte("a,b"))
	require.ErrorIs(t, err, ErrNotASpreadsheet)
}

func TestTaskImport_StripsDirectoryFromFilename(t *testing.T) {
	f := &fakeTasksAPI{ImportRet: "imported 3 tasks"}
	svc := NewTaskService(f)

	msg, err := svc.ImportExcel(context.Background(), "/home/alice/exports/tasks.XLSX", []byte{1, 2})
	require.NoError(t, err)
	require.Equal(t, "imported 3 tasks", msg)
	require.Equal(t, "tasks.XLSX", f.LastImportFilename)
}
