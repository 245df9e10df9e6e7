package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) List(ctx context.Context) error {
	views, err := a.users.List(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("%-26s %-24s %-30s %s\n", "ID", "NAME", "EMAIL", "ROLE")
	for _, v := range views {
		fmt.Printf("%-26s %-24s %-30s %s\n", v.ID, v.Name, v.Email, v.Role)
	}
	return nil
}
