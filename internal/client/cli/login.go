package cli

import (
	"context"
	"log"
	"os"

	"github.com/dpetrovs/useradm/internal/common"
)

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		log.Printf("Login unsuccessfull: %s", err.Error())
		return err
	}

	a.userName = email
	log.Printf("Login successfull")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	a.userName = ""
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	if !a.session.IsLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}
	if a.userName != "" {
		printlnFn("Logged in as", a.userName)
	} else {
		printlnFn("Logged in (restored session)")
	}
	return nil
}
