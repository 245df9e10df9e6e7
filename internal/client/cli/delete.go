package cli

import (
	"context"
	"log"
	"os"
)

func (a *App) Delete(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "Enter user id to delete", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.users.Remove(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	log.Printf("Deleted user %s", id)
	return nil
}
