package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/taskdeck/taskdeck/internal/client/models"
)

func (a *App) listCategories(ctx context.Context) {
	cats, err := a.cats.List(ctx)
	if err != nil {
		a.printError(err)
		return
	}
	if len(cats) == 0 {
		fmt.Println("No categories.")
		return
	}
	for _, c := range cats {
		fmt.Printf("%4d  %-20s %s\n", c.ID, c.Name, c.Color)
	}
}

func (a *App) addCategory(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return
	}
	color, err := getSimpleText(a.reader, "Color (#rrggbb, empty for default)", os.Stdout)
	if err != nil {
		return
	}

	cat, err := a.cats.Create(ctx, models.CategoryCreate{Name: name, Color: color})
	if err != nil {
		a.printError(err)
		return
	}
	fmt.Printf("Created category %d (%s)\n", cat.ID, cat.Name)
}

func (a *App) editCategory(ctx context.Context, args []string) {
	id, ok := parseID(args, "editcat <id>")
	if !ok {
		return
	}

	name, err := getSimpleText(a.reader, "New name (empty to keep)", os.Stdout)
	if err != nil {
		return
	}
	color, err := getSimpleText(a.reader, "New color (empty to keep)", os.Stdout)
	if err != nil {
		return
	}

	var req models.CategoryUpdate
	if name != "" {
		req.Name = &name
	}
	if color != "" {
		req.Color = &color
	}

	cat, err := a.cats.Update(ctx, id, req)
	if err != nil {
		a.printError(err)
		return
	}
	fmt.Printf("Updated category %d (%s)\n", cat.ID, cat.Name)
}

func (a *App) deleteCategory(ctx context.Context, args []string) {
	id, ok := parseID(args, "rmcat <id>")
	if !ok {
		return
	}

	yes, err := Confirm(a.reader, fmt.Sprintf("Delete category %d? Its tasks keep existing without a category.", id), os.Stdout)
	if err != nil || !yes {
		return
	}

	if err := a.cats.Delete(ctx, id); err != nil {
		a.printError(err)
		return
	}
	fmt.Println("Deleted.")
}
