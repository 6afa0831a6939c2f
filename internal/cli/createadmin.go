package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kwalters/stay-catalog/internal/auth"
	"github.com/kwalters/stay-catalog/internal/catalog"
	"github.com/kwalters/stay-catalog/internal/config"
	"github.com/kwalters/stay-catalog/internal/logging"
)

func newCreateAdminCmd() *cobra.Command {
	var (
		firstName string
		lastName  string
	)

	cmd := &cobra.Command{
		Use:   "create-admin <email> <password>",
		Short: "Create an administrator account",
		Long:  "Create an administrator account directly in the configured store. Use this to bootstrap the first admin; further users are created through the API.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreateAdmin(args[0], args[1], firstName, lastName)
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "Admin", "first name for the account")
	cmd.Flags().StringVar(&lastName, "last-name", "User", "last name for the account")

	return cmd
}

func runCreateAdmin(email, password, firstName, lastName string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.DevMode)

	svcs, err := buildServices(cfg)
	if err != nil {
		return err
	}
	defer closeDB(svcs.database)

	// Bootstrap runs before any admin exists, so it carries a synthetic
	// admin claim instead of an authenticated caller.
	u, err := svcs.catalog.CreateUser(auth.Claims{IsAdmin: true}, catalog.CreateUserInput{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		IsAdmin:   true,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created admin %s (%s)\n", u.Email, u.ID)
	return nil
}
