package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pensup/pensup/internal/filex"
	"github.com/pensup/pensup/internal/models"
	"github.com/pensup/pensup/internal/services"
)

func (a *App) ShowProfile(ctx context.Context) error {
	record := a.profiles.Load(ctx)

	printlnFn("Name:", record.Name)
	printlnFn("Tags:", models.DisplayTags(record.Tags))
	printlnFn("Bio: ", record.Bio)
	printlnFn(fmt.Sprintf("Works %d · Followers %d · Subscribers %d · Following %d",
		record.Counts.Works, record.Counts.Followers, record.Counts.Subscribers, record.Counts.Following))
	if record.Avatar != "" {
		printlnFn("Avatar: set,", len(record.Avatar), "bytes inline")
	}
	if record.Background != "" {
		printlnFn("Banner: set,", len(record.Background), "bytes inline")
	}
	return nil
}

// EditProfile prompts for the text fields and saves the record. The stored
// images are carried over unchanged; an empty answer keeps the current value.
func (a *App) EditProfile(ctx context.Context) error {
	record := a.profiles.Load(ctx)

	name, err := GetSimpleText(a.reader, fmt.Sprintf("Display name [%s]", record.Name), os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if name != "" {
		record.Name = name
	}

	tags, err := GetSimpleText(a.reader, fmt.Sprintf("Tags, comma-separated [%s]", record.Tags), os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if tags != "" {
		record.Tags = tags
	}

	bio, err := GetMultiline(a.reader, "Bio", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if bio != "" {
		record.Bio = bio
	}

	return a.saveProfile(ctx, record)
}

func (a *App) SetAvatar(ctx context.Context) error {
	return a.setImage(ctx, "Path to avatar image", func(record *models.ProfileRecord, uri string) {
		record.Avatar = uri
	})
}

func (a *App) SetBanner(ctx context.Context) error {
	return a.setImage(ctx, "Path to banner image", func(record *models.ProfileRecord, uri string) {
		record.Background = uri
	})
}

func (a *App) setImage(ctx context.Context, prompt string, assign func(*models.ProfileRecord, string)) error {
	path, err := GetSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	uri, err := filex.ImageDataURI(path)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	record := a.profiles.Load(ctx)
	assign(&record, uri)
	return a.saveProfile(ctx, record)
}

func (a *App) saveProfile(ctx context.Context, record models.ProfileRecord) error {
	result, err := a.profiles.Save(ctx, record)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	switch result {
	case services.SaveResult{Stored: true, Reduced: true}:
		printlnFn("Saved, but the images were too large for local storage and were left out.")
	default:
		printlnFn("Saved.")
	}
	return nil
}

func (a *App) ResetProfile(ctx context.Context) error {
	if _, err := a.profiles.Reset(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Profile restored to defaults.")
	return nil
}
