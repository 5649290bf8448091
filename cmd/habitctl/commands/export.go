package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dailydost/dailydost/internal/models"
	"github.com/dailydost/dailydost/internal/store"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var user string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a user's data as JSON",
		Long:  "Dump a user's account, habit collection, and notes to stdout as a single JSON document",
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

			nop := zap.NewNop()
			habits, err := store.NewHabitRepository(kvStore, nop).Load(ctx, account.ID)
			if err != nil {
				return fmt.Errorf("load habits: %w", err)
			}
			notes, err := store.NewNoteRepository(kvStore, nop).Load(ctx, account.ID)
			if err != nil {
				return fmt.Errorf("load notes: %w", err)
			}

			export := struct {
				User   models.User    `json:"user"`
				Habits []models.Habit `json:"habits"`
				Notes  []models.Note  `json:"notes"`
			}{account, habits, notes}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(export)
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "User email or ID (required)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
