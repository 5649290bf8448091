package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dailydost/dailydost/internal/stats"
	"github.com/dailydost/dailydost/internal/store"
)

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	var user string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show a user's habit statistics",
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

			totals := stats.Totals(habits)
			fmt.Printf("Statistics for %s\n", account.Email)
			fmt.Printf("  Habits:          %d\n", len(habits))
			fmt.Printf("  Completed:       %d\n", totals.Completed)
			fmt.Printf("  Skipped:         %d\n", totals.Skipped)
			fmt.Printf("  Failed:          %d\n", totals.Failed)
			fmt.Printf("  Completion rate: %d%%\n", stats.CompletionRate(habits))

			fmt.Println("  Last 7 days:")
			for _, b := range stats.DailySeries(habits, time.Now().UTC()) {
				fmt.Printf("    %-4s completed=%d skipped=%d failed=%d\n", b.Label, b.Completed, b.Skipped, b.Failed)
			}

			top := stats.TopStreaks(habits, stats.DefaultTopStreaks)
			if len(top) > 0 {
				fmt.Println("  Top streaks:")
				for _, h := range top {
					fmt.Printf("    %-30s %d\n", h.Title, h.Streak)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "User email or ID (required)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
