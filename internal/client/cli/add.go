package cli

import (
	"context"
	"log"
	"os"

	"github.com/dpetrovs/useradm/internal/client/models"
	"github.com/dpetrovs/useradm/internal/common"
)

// promptUserFields collects the editable user fields interactively.
func (a *App) promptUserFields(withPassword bool) (models.UserFields, error) {
	var fields models.UserFields
	var err error

	if fields.Email, err = GetSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return fields, err
	}
	if fields.FirstName, err = GetSimpleText(a.reader, "Enter first name", os.Stdout); err != nil {
		return fields, err
	}
	if fields.LastName, err = GetSimpleText(a.reader, "Enter last name", os.Stdout); err != nil {
		return fields, err
	}

	role, err := GetSimpleText(a.reader, "Enter role", os.Stdout)
	if err != nil {
		return fields, err
	}
	if role != "" {
		fields.Roles = []string{role}
	}

	if withPassword {
		password, err := GetPassword(os.Stdout)
		if err != nil {
			return fields, err
		}
		fields.Password = string(password)
		common.WipeByteArray(password)
	}

	return fields, nil
}

func (a *App) Add(ctx context.Context) error {

	fields, err := a.promptUserFields(true)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	view, err := a.users.Create(ctx, fields)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	log.Printf("Created user %s (%s)", view.Name, view.ID)
	return nil
}
