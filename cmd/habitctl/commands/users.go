package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dailydost/dailydost/internal/store"
)

// NewUsersCmd creates the users command
func NewUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List registered accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			kvStore, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := kvStore.Close(); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to close redis connection: %v\n", err)
				}
			}()

			users, err := store.NewUserRepository(kvStore, zap.NewNop()).List(ctx)
			if err != nil {
				return fmt.Errorf("list users: %w", err)
			}

			if len(users) == 0 {
				fmt.Println("No registered accounts.")
				return nil
			}
			for _, u := range users {
				fmt.Printf("%s  %-30s %s (joined %s)\n", u.ID, u.Email, u.Name, u.JoinDate.Format("2006-01-02"))
			}
			return nil
		},
	}
}
