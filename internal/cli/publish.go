package cli

import (
	"context"
	"os"

	"github.com/pensup/pensup/internal/common"
	"github.com/pensup/pensup/internal/filex"
	"github.com/pensup/pensup/internal/models"
)

func (a *App) Publish(ctx context.Context) error {
	user, signedIn := a.session.Current()
	if !signedIn {
		printlnFn(common.ErrNotAuthenticated.Error())
		return common.ErrNotAuthenticated
	}

	title, err := GetSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	series, err := GetSimpleText(a.reader, "Series (optional)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	cover, err := GetSimpleText(a.reader, "Path to cover image (optional)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	work := models.Work{Username: user, Title: title, Series: series}
	if cover != "" {
		uri, err := filex.ImageDataURI(cover)
		if err != nil {
			printlnFn(err.Error())
			return err
		}
		work.Cover = uri
	}

	stored, err := a.works.Add(ctx, work)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Published:", stored.Title)
	return nil
}

func (a *App) ListWorks(ctx context.Context) error {
	user, signedIn := a.session.Current()
	if !signedIn {
		printlnFn(common.ErrNotAuthenticated.Error())
		return common.ErrNotAuthenticated
	}

	list, err := a.works.ListByOwner(ctx, user)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(list) == 0 {
		printlnFn("No published works yet.")
		return nil
	}
	for _, work := range list {
		line := "  • " + work.Title
		if work.Series != "" {
			line = "  • " + work.Series + ": " + work.Title
		}
		printlnFn(line)
	}
	return nil
}
