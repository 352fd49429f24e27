package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"drift-detector/core/catalog"
	"drift-detector/core/compare"
	"drift-detector/core/config"
	"drift-detector/core/database"
	"drift-detector/core/logger"
	"drift-detector/core/report"
	"drift-detector/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// Flags for the compare command
	outDir      string
	formats     []string
	publishFlag bool
	failOnDrift bool
)

// compareCmd runs one full catalog comparison between source and target.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the catalogs of the source and target databases",
	Long: `Compare fetches catalog metadata from both configured endpoints,
reconciles every object category, and writes a report.

Examples:
  # Compare and print the summary table
  drift-detector compare

  # Write JSON, HTML and Excel artifacts
  drift-detector compare --format json,html,xlsx

  # Publish artifacts to the configured bucket and fail the build on drift
  drift-detector compare --publish --fail-on-drift`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&outDir, "out", "", "Output directory for report artifacts (default from config)")
	compareCmd.Flags().StringSliceVar(&formats, "format", []string{"json"}, "Artifact formats: json, html, xlsx")
	compareCmd.Flags().BoolVar(&publishFlag, "publish", false, "Upload artifacts to the configured storage bucket")
	compareCmd.Flags().BoolVar(&failOnDrift, "fail-on-drift", false, "Exit with an error when any drift is detected")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()
	zap.ReplaceGlobals(l)

	if outDir == "" {
		outDir = cfg.Report.OutputDir
	}

	l.Info("Connecting to endpoints",
		zap.String("source", cfg.Source.DisplayLabel()),
		zap.String("target", cfg.Target.DisplayLabel()),
	)

	sourceDB, err := database.Connect(cfg.Source)
	if err != nil {
		return fmt.Errorf("source connection failed: %w", err)
	}
	targetDB, err := database.Connect(cfg.Target)
	if err != nil {
		return fmt.Errorf("target connection failed: %w", err)
	}

	source := endpointInfo(cfg.Source, sourceDB, l)
	target := endpointInfo(cfg.Target, targetDB, l)

	// The two endpoints are independent, so their catalogs fetch concurrently.
	var (
		wg     sync.WaitGroup
		srcRaw map[string]*compare.Raw
		tgtRaw map[string]*compare.Raw
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		srcRaw = catalog.NewFetcher(sourceDB, cfg.Source.Name, l.Named("source")).FetchAll(ctx)
	}()
	go func() {
		defer wg.Done()
		tgtRaw = catalog.NewFetcher(targetDB, cfg.Target.Name, l.Named("target")).FetchAll(ctx)
	}()
	wg.Wait()

	l.Info("Reconciling categories", zap.Int("categories", len(compare.Categories)))
	run := compare.RunAll(compare.Categories, srcRaw, tgtRaw)

	rep := report.New(source, target, run)
	report.PrintSummary(os.Stdout, rep)

	artifacts, err := writeArtifacts(rep, l)
	if err != nil {
		return err
	}

	if publishFlag {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		if err := report.Publish(ctx, client, cfg.Storage.Bucket, rep, artifacts); err != nil {
			return fmt.Errorf("failed to publish report: %w", err)
		}
		l.Info("Report published",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("prefix", rep.RunID),
		)
	}

	if failOnDrift && rep.Drift {
		return fmt.Errorf("drift detected (run %s)", rep.RunID)
	}
	return nil
}

// endpointInfo builds the report header entry for one side. A version
// lookup failure only costs the header field.
func endpointInfo(cfg database.Config, db *gorm.DB, l *zap.Logger) report.Endpoint {
	version, err := database.ServerVersion(db)
	if err != nil {
		l.Warn("Could not read server version", zap.String("endpoint", cfg.DisplayLabel()), zap.Error(err))
	}
	return report.Endpoint{
		Label:   cfg.DisplayLabel(),
		Address: cfg.Address(),
		Version: version,
	}
}

// writeArtifacts writes one file per requested format and returns their paths.
func writeArtifacts(rep *report.Report, l *zap.Logger) ([]string, error) {
	var paths []string
	base := filepath.Join(outDir, "report-"+rep.RunID)

	for _, format := range formats {
		var (
			path string
			err  error
		)
		switch format {
		case "json":
			path = base + ".json"
			err = rep.WriteJSON(path)
		case "html":
			path = base + ".html"
			err = rep.WriteHTML(path)
		case "xlsx":
			path = base + ".xlsx"
			err = rep.WriteExcel(path)
		default:
			return nil, fmt.Errorf("unknown format %q (want json, html or xlsx)", format)
		}
		if err != nil {
			return nil, err
		}
		l.Info("Wrote report artifact", zap.String("path", path))
		paths = append(paths, path)
	}
	return paths, nil
}
