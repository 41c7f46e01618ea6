package cli

import (
	"context"
	"fmt"

	"github.com/pensup/pensup/internal/models"
)

// ShowCreator renders a creator's page in the same two phases as the web
// client: the bundled fixture paints immediately, then the settled remote
// result replaces it (or a note explains why it could not).
func (a *App) ShowCreator(ctx context.Context, id string) error {
	resolution := a.creators.Resolve(ctx, id)

	if resolution.Local != nil {
		a.renderCreator(resolution.Local)
		printlnFn("(checking for updates...)")
	}

	result, ok := <-resolution.Remote
	switch {
	case ok && result.Err == nil:
		a.renderCreator(result.Profile)
	case resolution.Local != nil:
		printlnFn("(could not reach the server; showing the bundled profile)")
	default:
		printlnFn("Creator not found:", id)
	}
	return nil
}

func (a *App) renderCreator(p *models.CreatorProfile) {
	printlnFn("──", p.Name, "──")
	printlnFn("Tags:", models.DisplayTags(p.Tags))
	printlnFn("Bio: ", p.Bio)
	printlnFn(fmt.Sprintf("Works %d · Followers %d · Subscribers %d",
		p.Counts.Works, p.Counts.Followers, p.Counts.Subscribers))
	for _, work := range p.Works {
		line := "  • " + work.Title
		if work.Status != "" {
			line += " (" + work.Status + ")"
		}
		printlnFn(line)
	}
}
