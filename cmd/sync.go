package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"enum-registry/core/config"
	"enum-registry/core/reconcile"
	"enum-registry/feature/enums"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncLanguages   []string
	syncType        string
	syncSchema      string
	syncKeepOrphans bool
	syncDryRun      bool
	yesConfirm      bool
)

// syncCmd synchronizes the lookup table with the enum registry.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize the enum lookup table with the catalog",
	Long: `Plans the drift between the enum catalog and the lookup table, prints it
and applies it. Deletes of orphan or duplicate rows require confirmation.

Examples:
  # Report only
  sync --dry-run

  # Sync one type for English and Turkish
  sync --type OrderStatus --languages en,tr

  # Non-interactive, keeping rows for values no longer declared
  sync --keep-orphans --yes`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringSliceVar(&syncLanguages, "languages", nil, "Languages to maintain (defaults to sync.languages)")
	syncCmd.Flags().StringVar(&syncSchema, "schema", "", "Database schema of the lookup table (defaults to sync.schema)")
	syncCmd.Flags().StringVar(&syncType, "type", "", "Only synchronize this enum type")
	syncCmd.Flags().BoolVar(&syncKeepOrphans, "keep-orphans", false, "Keep rows for values that are no longer declared")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Plan only, make no changes")
	syncCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := newRuntime(ctx, true, func(cfg *config.Config) {
		if syncSchema != "" {
			cfg.Sync.Schema = syncSchema
		}
	})
	if err != nil {
		return err
	}
	l := rt.log
	defer l.Sync()

	svc := enums.NewService(rt.registry, rt.engine, rt.cfg.Server, rt.cfg.Sync, l)
	req := enums.SyncRequest{
		Languages:   syncLanguages,
		Type:        syncType,
		KeepOrphans: syncKeepOrphans,
		DryRun:      true,
	}

	l.Info("Planning lookup synchronization")
	plan, err := svc.PlanSync(ctx, req)
	if plan != nil {
		printSyncReport(l, plan)
	}
	if err != nil && !isPartial(err) {
		return fmt.Errorf("failed to plan sync: %w", err)
	}

	if syncDryRun {
		l.Info("Dry-run mode: No changes were made.")
		return err
	}

	if plan.Summary.Inserted+plan.Summary.Updated+plan.Summary.Deleted+plan.Summary.Duplicates == 0 {
		l.Info("Lookup table is up to date.")
		return err
	}

	if plan.Summary.Deleted+plan.Summary.Duplicates > 0 && !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	l.Info("Applying actions...")
	req.DryRun = false
	report, err := svc.Sync(ctx, req)
	if report != nil {
		printSyncReport(l, report)
	}
	if err != nil {
		return fmt.Errorf("failed to apply sync: %w", err)
	}
	l.Info("Lookup synchronization completed", zap.String("run_id", report.RunID))
	return nil
}

func isPartial(err error) bool {
	var partial *reconcile.PartialFailure
	return errors.As(err, &partial)
}

// printSyncReport prints a formatted synchronization report using logger.
func printSyncReport(l *zap.Logger, report *reconcile.Report) {
	s := report.Summary

	l.Info("Synchronization report",
		zap.String("run_id", report.RunID),
		zap.Bool("dry_run", report.DryRun),
		zap.Strings("languages", report.Languages),
		zap.Int("types", s.Types),
		zap.Int("failed", s.Failed),
		zap.Int("inserted", s.Inserted),
		zap.Int("updated", s.Updated),
		zap.Int("deleted", s.Deleted),
		zap.Int("duplicates", s.Duplicates),
		zap.Duration("duration", report.Duration),
	)

	shown := 0
	const maxShow = 5
	for _, u := range report.Units {
		if u.Error != "" {
			l.Warn("Unit failed", zap.String("type", u.EnumName), zap.String("error", u.Error))
			continue
		}
		for _, action := range u.Actions {
			if shown == maxShow {
				break
			}
			l.Info("Sample action",
				zap.String("type", string(action.Type)),
				zap.String("enum", action.Row.EnumName),
				zap.Int32("value", action.Row.Value),
				zap.String("language", action.Row.Language),
				zap.String("description", action.Row.Description),
			)
			shown++
		}
	}

	total := s.Inserted + s.Updated + s.Deleted + s.Duplicates
	if total > shown && shown == maxShow {
		l.Info("Additional actions not shown", zap.Int("count", total-shown))
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\nAuto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\nType 'yes' to confirm deleting lookup rows: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
