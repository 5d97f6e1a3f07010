package cli

import (
	"context"
	"fmt"
)

func (a *App) list(ctx context.Context) {
	users := a.engine.ActiveUsers()
	if len(users) == 0 {
		title, subtitle := a.emptyState()
		fmt.Printf("%s\n%s\n", emptyTitleStyle.Render(title), subtitle)
		return
	}

	width := terminalWidth()
	for i, u := range users {
		fmt.Println(formatRow(i+1, u, a.engine.IsBookmarkedAt(i), width))
	}
}

// emptyState mirrors the two empty-list messages of the mobile client.
func (a *App) emptyState() (string, string) {
	if a.engine.Searching() {
		return "No users found", "Try adjusting your search criteria"
	}
	return "No users available", "Use 'refresh' or check your connection"
}

func (a *App) next(ctx context.Context) {
	if a.engine.Exhausted() {
		fmt.Println("no more users to load")
		return
	}
	before := a.engine.Count()
	a.engine.LoadNext(ctx)
	a.listFrom(before)
}

// listFrom prints only the rows appended after index from.
func (a *App) listFrom(from int) {
	users := a.engine.ActiveUsers()
	width := terminalWidth()
	for i := from; i < len(users); i++ {
		fmt.Println(formatRow(i+1, users[i], a.engine.IsBookmarkedAt(i), width))
	}
}

func (a *App) refresh(ctx context.Context) {
	a.engine.Refresh(ctx)
	a.list(ctx)
}

func (a *App) search(ctx context.Context, query string) {
	a.engine.SetQuery(query)
	a.list(ctx)
}

func (a *App) clearSearch() {
	a.engine.ClearSearch()
	fmt.Printf("search cleared, %d users loaded\n", a.engine.Count())
}

func (a *App) show(ctx context.Context, args []string) {
	idx, err := parseIndex(args)
	if err != nil {
		fmt.Println(err)
		return
	}
	u, ok := a.engine.UserAt(idx)
	if !ok {
		fmt.Printf("no user at row %d\n", idx+1)
		return
	}

	fmt.Println(detailStyle.Render(u.ShareText()))
	fmt.Printf("nationality: %s  timezone: %s (%s)\n", u.Nat, u.Location.Timezone.Offset, u.Location.Timezone.Description)
	if a.engine.IsBookmarkedAt(idx) {
		fmt.Println(badgeStyle.Render("★ bookmarked"))
	}

	// warm the avatar cache so a UI collaborator gets an instant hit
	if u.Picture.Thumbnail != "" {
		if _, err := a.loader.Load(ctx, u.Picture.Thumbnail); err != nil {
			a.log.Debug(ctx, "thumbnail prefetch failed", "url", u.Picture.Thumbnail, "error", err)
		}
	}
}

func (a *App) bookmark(ctx context.Context, args []string) {
	idx, err := parseIndex(args)
	if err != nil {
		fmt.Println(err)
		return
	}
	u, ok := a.engine.UserAt(idx)
	if !ok {
		fmt.Printf("no user at row %d\n", idx+1)
		return
	}

	a.engine.ToggleBookmarkAt(ctx, idx)
	if a.store.IsBookmarked(u.Key()) {
		fmt.Printf("bookmarked %s\n", u.FullName())
	} else {
		fmt.Printf("removed bookmark for %s\n", u.FullName())
	}
}

func (a *App) listBookmarks() {
	users := a.store.All()
	if len(users) == 0 {
		fmt.Println("no bookmarks yet")
		return
	}
	width := terminalWidth()
	for i, u := range users {
		fmt.Println(formatRow(i+1, u, true, width))
	}
}

func (a *App) clearBookmarks(ctx context.Context) {
	a.store.ClearAll(ctx)
	fmt.Println("all bookmarks cleared")
}
