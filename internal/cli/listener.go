package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/randomusers/internal/remote"
)

// printingListener translates engine events into terminal output.
type printingListener struct {
	out io.Writer
}

func (p *printingListener) UsersUpdated()         {}
func (p *printingListener) SearchResultsUpdated() {}

func (p *printingListener) LoadingStarted() {
	fmt.Fprintln(p.out, metaStyle.Render("loading..."))
}

func (p *printingListener) LoadingFinished() {}

// ErrorOccurred prints a banner matched to the failure class.
func (p *printingListener) ErrorOccurred(err error) {
	var (
		se *remote.StatusError
		de *remote.DecodeError
		te *remote.TransportError
	)
	switch {
	case errors.As(err, &te):
		fmt.Fprintln(p.out, "network problem, check your connection and retry")
	case errors.As(err, &se):
		fmt.Fprintf(p.out, "server returned status %d, try again later\n", se.Code)
	case errors.As(err, &de), errors.Is(err, remote.ErrEmptyResponse):
		fmt.Fprintln(p.out, "the server response could not be read, try again")
	default:
		fmt.Fprintf(p.out, "error: %v\n", err)
	}
}

// BadgeChanged redraws the bookmark badge line.
func (p *printingListener) BadgeChanged(count int) {
	fmt.Fprintln(p.out, badgeStyle.Render(fmt.Sprintf("bookmarks: %d", count)))
}
