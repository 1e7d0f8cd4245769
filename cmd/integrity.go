package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"enum-registry/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var integrityJSON bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the catalog and lookup table",
	Long:  `Checks that the enum catalog loads cleanly and that the lookup table matches its expected schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, true)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the lookup table schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, false)
	},
}

// catalogCmd represents the integrity catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Check the enum catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, catalogCmd)
	integrityCmd.PersistentFlags().BoolVar(&integrityJSON, "json", false, "Save the detailed report as JSON")
}

func runIntegrityChecks(cmd *cobra.Command, runSchema, runCatalog bool) error {
	rt, err := newRuntime(cmd.Context(), false)
	if err != nil {
		return err
	}
	logg := rt.log
	defer logg.Sync()

	svc := integrity.NewService(rt.registry, rt.db, rt.cfg.Sync.Schema, logg)
	out := map[string]any{}

	if runCatalog {
		logg.Info("Checking enum catalog...")
		report := svc.CheckCatalog()
		out["catalog"] = report
		if report.Healthy {
			logg.Info("Catalog is healthy.", zap.Int("types", report.Types))
		} else {
			logg.Warn("Catalog issues found",
				zap.Int("types", report.Types),
				zap.Int("skipped", len(report.Skipped)),
				zap.Int("ambiguous", len(report.Ambiguous)))
			for _, s := range report.Skipped {
				logg.Warn("Skipped candidate", zap.String("name", s.Name), zap.String("reason", s.Reason))
			}
			for name, values := range report.Ambiguous {
				logg.Warn("Duplicate values", zap.String("type", name), zap.Int32s("values", values))
			}
		}
		if len(report.Empty) > 0 {
			logg.Warn("Types without members", zap.Strings("types", report.Empty))
		}
	}

	if runSchema {
		if rt.db == nil {
			logg.Warn("Skipping schema check, no database connection")
		} else {
			logg.Info("Checking lookup table schema...", zap.String("schema", rt.cfg.Sync.Schema))
			report, err := svc.CheckSchema()
			if err != nil {
				return fmt.Errorf("schema check failed: %w", err)
			}
			out["schema"] = report
			if report.Matched {
				logg.Info("Lookup table matches expected definition.", zap.String("dialect", report.Dialect))
			} else {
				logg.Warn("Lookup table mismatches found", zap.String("dialect", report.Dialect))
				for table, tblReport := range report.Tables {
					if tblReport.Status == "ok" {
						continue
					}
					if len(tblReport.MissingColumns) > 0 {
						logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
					}
					if len(tblReport.TypeMismatches) > 0 {
						logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
					}
				}
				for _, e := range report.Errors {
					logg.Error("Inspection Error", zap.String("error", e))
				}
			}
		}
	}

	if integrityJSON {
		filename := fmt.Sprintf("integrity_enums_%d.json", time.Now().Unix())
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("failed to save JSON file: %w", err)
		}
		logg.Info("Detailed JSON report saved", zap.String("file", filename))
	}
	return nil
}
