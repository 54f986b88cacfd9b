package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/client/models"
)

func parseID(args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		fmt.Println("Usage:", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Not a valid id:", args[0])
		return 0, false
	}
	return id, true
}

func formatTask(t models.Task) string {
	mark := " "
	if t.IsCompleted {
		mark = "x"
	}
	line := fmt.Sprintf("[%s] %4d  %-8s %s", mark, t.ID, t.Priority, t.Title)
	if t.DueDate != nil {
		line += "  (due " + t.DueDate.Time.Format("2006-01-02") + ")"
	}
	return line
}

// listTasks understands optional filter arguments: "pending", "done",
// "cat=<id>" and "prio=<low|medium|high>".
func (a *App) listTasks(ctx context.Context, args []string) {
	var filter models.TaskFilter
	for _, arg := range args {
		switch {
		case arg == "pending":
			v := false
			filter.IsCompleted = &v
		case arg == "done":
			v := true
			filter.IsCompleted = &v
		case strings.HasPrefix(arg, "cat="):
			id, err := strconv.ParseInt(strings.TrimPrefix(arg, "cat="), 10, 64)
			if err != nil {
				fmt.Println("Not a valid category id:", arg)
				return
			}
			filter.CategoryID = &id
		case strings.HasPrefix(arg, "prio="):
			filter.Priority = models.Priority(strings.TrimPrefix(arg, "prio="))
		default:
			fmt.Println("Unknown filter:", arg)
			return
		}
	}

	tasks, err := a.tasks.List(ctx, filter)
	if err != nil {
		a.printError(err)
		return
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return
	}
	for _, t := range tasks {
		fmt.Println(formatTask(t))
	}
}

func (a *App) addTask(ctx context.Context) {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return
	}
	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return
	}
	priority, err := getSimpleText(a.reader, "Priority (low/medium/high, empty for medium)", os.Stdout)
	if err != nil {
		return
	}
	due, err := getSimpleText(a.reader, "Due date (YYYY-MM-DD, empty for none)", os.Stdout)
	if err != nil {
		return
	}
	category, err := getSimpleText(a.reader, "Category id (empty for none)", os.Stdout)
	if err != nil {
		return
	}

	req := models.TaskCreate{Title: title, Priority: models.Priority(priority)}
	if description != "" {
		req.Description = &description
	}
	if due != "" {
		parsed, err := time.Parse("2006-01-02", due)
		if err != nil {
			fmt.Println("Not a valid date:", due)
			return
		}
		req.DueDate = models.NewTimestamp(parsed)
	}
	if category != "" {
		id, err := strconv.ParseInt(category, 10, 64)
		if err != nil {
			fmt.Println("Not a valid category id:", category)
			return
		}
		req.CategoryID = &id
	}

	task, err := a.tasks.Create(ctx, req)
	if err != nil {
		a.printError(err)
		return
	}
	fmt.Println("Created:", formatTask(*task))
}

func (a *App) showTask(ctx context.Context, args []string) {
	id, ok := parseID(args, "show <id>")
	if !ok {
		return
	}

	task, err := a.tasks.Get(ctx, id)
	if err != nil {
		a.printError(err)
		return
	}

	fmt.Println(formatTask(*task))
	if task.Description != nil && *task.Description != "" {
		fmt.Println(*task.Description)
	}
	if task.CategoryID != nil {
		fmt.Println("Category:", *task.CategoryID)
	}
	if task.CompletedAt != nil {
		fmt.Println("Completed at:", task.CompletedAt.Time.Format("2006-01-02 15:04"))
	}
}

// editTask prompts for new values; empty input keeps the current one.
func (a *App) editTask(ctx context.Context, args []string) {
	id, ok := parseID(args, "edit <id>")
	if !ok {
		return
	}

	title, err := getSimpleText(a.reader, "New title (empty to keep)", os.Stdout)
	if err != nil {
		return
	}
	priority, err := getSimpleText(a.reader, "New priority (empty to keep)", os.Stdout)
	if err != nil {
		return
	}
	due, err := getSimpleText(a.reader, "New due date (YYYY-MM-DD, empty to keep)", os.Stdout)
	if err != nil {
		return
	}

	var req models.TaskUpdate
	if title != "" {
		req.Title = &title
	}
	if priority != "" {
		p := models.Priority(priority)
		req.Priority = &p
	}
	if due != "" {
		parsed, err := time.Parse("2006-01-02", due)
		if err != nil {
			fmt.Println("Not a valid date:", due)
			return
		}
		req.DueDate = models.NewTimestamp(parsed)
	}

	task, err := a.tasks.Update(ctx, id, req)
	if err != nil {
		a.printError(err)
		return
	}
	fmt.Println("Updated:", formatTask(*task))
}

func (a *App) completeTask(ctx context.Context, args []string, done bool) {
	usage := "done <id>"
	if !done {
		usage = "undone <id>"
	}
	id, ok := parseID(args, usage)
	if !ok {
		return
	}

	var task *models.Task
	var err error
	if done {
		task, err = a.tasks.Complete(ctx, id)
	} else {
		task, err = a.tasks.Incomplete(ctx, id)
	}
	if err != nil {
		a.printError(err)
		return
	}
	fmt.Println(formatTask(*task))
}

func (a *App) deleteTask(ctx context.Context, args []string) {
	id, ok := parseID(args, "rm <id>")
	if !ok {
		return
	}

	yes, err := Confirm(a.reader, fmt.Sprintf("Delete task %d?", id), os.Stdout)
	if err != nil || !yes {
		return
	}

	if err := a.tasks.Delete(ctx, id); err != nil {
		a.printError(err)
		return
	}
	fmt.Println("Deleted.")
}

func (a *App) taskStats(ctx context.Context) {
	stats, err := a.tasks.Stats(ctx)
	if err != nil {
		a.printError(err)
		return
	}

	fmt.Printf("Total: %d  Completed: %d  Pending: %d  Overdue: %d\n",
		stats.Total, stats.Completed, stats.Pending, stats.Overdue)
	fmt.Printf("By priority: high %d, medium %d, low %d\n",
		stats.ByPriority.High, stats.ByPriority.Medium, stats.ByPriority.Low)
}

func (a *App) importTasks(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: import <file.xlsx>")
		return
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Println("Cannot read file:", err)
		return
	}

	msg, err := a.tasks.ImportExcel(ctx, args[0], data)
	if err != nil {
		a.printError(err)
		return
	}
	fmt.Println(msg)
}

func (a *App) downloadTemplate(ctx context.Context, args []string) {
	path := "task_import_template.xlsx"
	if len(args) > 0 {
		path = args[0]
	}

	data, err := a.tasks.DownloadTemplate(ctx)
	if err != nil {
		a.printError(err)
		return
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		fmt.Println("Cannot write file:", err)
		return
	}
	fmt.Println("Template saved to", path)
}
