package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dailydost/dailydost/internal/store"
)

// NewHabitsCmd creates the habits command
func NewHabitsCmd() *cobra.Command {
	var user string
	cmd := &cobra.Command{
		Use:   "habits",
		Short: "List a user's habit collection",
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

			account, err := resolveUser(ctx, kvStore, user)
			if err != nil {
				return err
			}

			habits, err := store.NewHabitRepository(kvStore, zap.NewNop()).Load(ctx, account.ID)
			if err != nil {
				return fmt.Errorf("load habits: %w", err)
			}

			if len(habits) == 0 {
				fmt.Printf("No habits for %s.\n", account.Email)
				return nil
			}
			for _, h := range habits {
				state := " "
				if h.Completed {
					state = "x"
				}
				fmt.Printf("[%s] %-30s %-10s streak=%-3d progress=%d%% entries=%d\n",
					state, h.Title, h.Category, h.Streak, h.Progress, len(h.CompletionHistory))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "User email or ID (required)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
