package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (a *App) prompt() string {
	badge := ""
	if n := a.engine.BadgeCount(); n > 0 {
		badge = badgeStyle.Render(fmt.Sprintf(" ★%d", n))
	}
	if a.engine.Searching() {
		return fmt.Sprintf("rusers%s /%s> ", badge, a.engine.Query())
	}
	return fmt.Sprintf("rusers%s> ", badge)
}

// Root runs the command loop. The first page is loaded up front so the
// user lands on a populated list.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Random user browser (type 'help' for commands)")
	a.engine.LoadNext(ctx)
	a.list(ctx)

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(a.prompt())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Println("Commands: list, next, refresh, search <text>, clear, show <n>, bm <n>, bookmarks, clearbm, exit")
		case "list", "l":
			a.list(ctx)
		case "next", "n":
			a.next(ctx)
		case "refresh":
			a.refresh(ctx)
		case "search", "s":
			a.search(ctx, strings.Join(args, " "))
		case "clear":
			a.clearSearch()
		case "show":
			a.show(ctx, args)
		case "bm", "bookmark":
			a.bookmark(ctx, args)
		case "bookmarks":
			a.listBookmarks()
		case "clearbm":
			a.clearBookmarks(ctx)
		case "exit", "quit":
			return
		default:
			fmt.Printf("unknown command %q, type 'help'\n", cmd)
		}

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// parseIndex converts a 1-based row argument to a 0-based view index.
func parseIndex(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one row number")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("row must be a positive number, got %q", args[0])
	}
	return n - 1, nil
}
