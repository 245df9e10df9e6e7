package cli

import (
	"context"
	"log"
	"os"
)

func (a *App) Update(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "Enter user id to update", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fields, err := a.promptUserFields(false)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	view, err := a.users.Update(ctx, id, fields)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	log.Printf("Updated user %s (%s)", view.Name, view.ID)
	return nil
}
