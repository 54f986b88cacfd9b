package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/taskdeck/taskdeck/internal/client/nav"
)

func (a *App) getStatus() string {
	s := ""
	if user := a.sessions.Get().User; user != nil {
		s = user.Username + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// enter moves to the screen a command belongs to and reports whether the
// guards admitted it. A denied authenticated screen remembers where the
// user wanted to go so a later login can take them there.
func (a *App) enter(route nav.Route) bool {
	landed := a.navigator.Go(route)
	if landed == route {
		return true
	}
	if route.RequiresAuth() {
		fmt.Println("Please login first.")
	} else {
		fmt.Println("Already logged in.")
	}
	return false
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to taskdeck (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	for {
		fmt.Printf("taskdeck %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Tasks:      tasks, add, show, edit, done, undone, rm, stats")
				fmt.Println("Categories: cats, addcat, editcat, rmcat")
				fmt.Println("Profile:    whoami, profile, passwd, avatar, rmavatar")
				fmt.Println("Spreadsheet: import <file.xlsx>, template <path>")
				fmt.Println("Other:      logout, exit")
			} else {
				fmt.Println("Available commands: register, login, exit")
			}

		case "register":
			if a.enter(nav.RouteRegister) {
				a.Register(ctx)
			}
		case "login":
			if a.enter(nav.RouteLogin) {
				a.Login(ctx)
			}
		case "logout":
			a.Logout(ctx)
		case "whoami":
			if a.enter(nav.RouteDashboard) {
				a.whoami(ctx)
			}

		case "tasks", "list":
			if a.enter(nav.RouteDashboard) {
				a.listTasks(ctx, args)
			}
		case "add":
			if a.enter(nav.RouteDashboard) {
				a.addTask(ctx)
			}
		case "show":
			if a.enter(nav.RouteDashboard) {
				a.showTask(ctx, args)
			}
		case "edit":
			if a.enter(nav.RouteDashboard) {
				a.editTask(ctx, args)
			}
		case "done":
			if a.enter(nav.RouteDashboard) {
				a.completeTask(ctx, args, true)
			}
		case "undone":
			if a.enter(nav.RouteDashboard) {
				a.completeTask(ctx, args, false)
			}
		case "rm":
			if a.enter(nav.RouteDashboard) {
				a.deleteTask(ctx, args)
			}
		case "stats":
			if a.enter(nav.RouteDashboard) {
				a.taskStats(ctx)
			}

		case "cats":
			if a.enter(nav.RouteDashboard) {
				a.listCategories(ctx)
			}
		case "addcat":
			if a.enter(nav.RouteDashboard) {
				a.addCategory(ctx)
			}
		case "editcat":
			if a.enter(nav.RouteDashboard) {
				a.editCategory(ctx, args)
			}
		case "rmcat":
			if a.enter(nav.RouteDashboard) {
				a.deleteCategory(ctx, args)
			}

		case "profile":
			if a.enter(nav.RouteSettings) {
				a.editProfile(ctx)
			}
		case "passwd":
			if a.enter(nav.RouteSettings) {
				a.changePassword(ctx)
			}
		case "avatar":
			if a.enter(nav.RouteSettings) {
				a.uploadAvatar(ctx, args)
			}
		case "rmavatar":
			if a.enter(nav.RouteSettings) {
				a.deleteAvatar(ctx)
			}

		case "import":
			if a.enter(nav.RouteDashboard) {
				a.importTasks(ctx, args)
			}
		case "template":
			if a.enter(nav.RouteDashboard) {
				a.downloadTemplate(ctx, args)
			}

		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
