package cli

import (
	"context"
	"os"
)

func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.session.SignUp(ctx, username, string(password)); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Welcome,", username+"!")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.session.SignIn(ctx, username, string(password)); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Signed in as", username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.SignOut(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Signed out. Your profile stays on this device.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	user, signedIn := a.session.Current()
	if !signedIn {
		printlnFn("Not signed in")
		return nil
	}
	printlnFn("Signed in as", user)
	return nil
}
