package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spigell/resume-analyzer/internal/store"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PromptShow   = "Show report"
	PromptDelete = "Delete"
	PromptBack   = "back"
	PromptExit   = "exit"
)

var errExit = errors.New("exit requested")

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved analyses",
	Run: func(cmd *cobra.Command, _ []string) {
		history(cmd)
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Print a saved analysis",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withHistory(func(ctx context.Context, db *store.SQLiteStore, logger *zap.Logger) error {
			rec, err := db.Get(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rec)
		})
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a saved analysis",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		withHistory(func(ctx context.Context, db *store.SQLiteStore, logger *zap.Logger) error {
			if err := db.Delete(ctx, args[0]); err != nil {
				return err
			}
			logger.Info("analysis deleted", zap.String("id", args[0]))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd, historyDeleteCmd)

	historyCmd.Flags().IntP("limit", "n", 20, "how many recent analyses to list, 0 for all")
	historyCmd.Flags().BoolP("interactive", "i", false, "choose an analysis to show or delete")
}

// withHistory opens the history database, runs fn and exits on failure.
func withHistory(fn func(ctx context.Context, db *store.SQLiteStore, logger *zap.Logger) error) {
	logger, cfg := setup()

	db, err := openStore(cfg.Store)
	if err != nil {
		logger.Fatal("opening history", zap.Error(err))
	}
	if db == nil {
		logger.Fatal("opening history", zap.Error(errHistoryDisabled))
	}
	defer db.Close()

	if err := fn(context.Background(), db, logger); err != nil {
		if errors.Is(err, errExit) {
			return
		}
		logger.Fatal("exiting", zap.Error(err))
	}
}

func history(cmd *cobra.Command) {
	limit, _ := cmd.Flags().GetInt("limit")
	interactive, _ := cmd.Flags().GetBool("interactive")

	withHistory(func(ctx context.Context, db *store.SQLiteStore, logger *zap.Logger) error {
		records, err := db.List(ctx, limit)
		if err != nil {
			return fmt.Errorf("listing analyses: %w", err)
		}

		logger.Info("saved analyses", zap.Int("count", len(records)))

		if !interactive {
			for _, rec := range records {
				fmt.Fprintln(cmd.OutOrStdout(), recordLabel(rec))
			}
			return nil
		}

		return browse(ctx, cmd, db, records, logger)
	})
}

// browse lets the user pick saved analyses until they choose to exit.
func browse(ctx context.Context, cmd *cobra.Command, db *store.SQLiteStore, records []store.Record, logger *zap.Logger) error {
	for {
		if len(records) == 0 {
			logger.Info("exiting", zap.String("reason", "no saved analyses"))
			return errExit
		}

		items := make([]string, 0, len(records)+1)
		for _, rec := range records {
			items = append(items, recordLabel(rec))
		}

		recordPrompt := promptui.Select{
			Label: "Choose an analysis and press ENTER",
			Items: append(items, PromptExit),
			Size:  10,
		}

		idx, selected, err := recordPrompt.Run()
		if err != nil {
			return err
		}
		if selected == PromptExit {
			return errExit
		}

		rec := records[idx]

		actionPrompt := promptui.Select{
			Label: strings.SplitN(selected, " ", 2)[0],
			Items: []string{PromptShow, PromptDelete, PromptBack},
		}

		_, action, err := actionPrompt.Run()
		if err != nil {
			return err
		}

		switch action {
		case PromptShow:
			if err := printJSON(cmd.OutOrStdout(), rec); err != nil {
				return err
			}
		case PromptDelete:
			if err := db.Delete(ctx, rec.ID); err != nil {
				return err
			}
			logger.Info("analysis deleted", zap.String("id", rec.ID))
			records = append(records[:idx], records[idx+1:]...)
		case PromptBack:
		default:
			return fmt.Errorf("invalid action: %s", action)
		}
	}
}
