package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/repograde/repograde/internal/contract"
	"github.com/repograde/repograde/internal/outwriter"
	"github.com/repograde/repograde/internal/render"
	"github.com/repograde/repograde/schema"
)

// RunCheck executes the full scoring pipeline for one repository: fetch a
// snapshot, evaluate the catalog against it, aggregate scores, collect
// recommendations, assemble the report and persist it. The report is
// written to the store only after every earlier stage completed; a failure
// at any stage aborts the check without touching the store.
func RunCheck(ctx context.Context, cfg *contract.Config, catalog *Catalog, fetcher contract.SnapshotFetcher, store contract.ReportStore) (*schema.ComplianceReport, error) {
	if cfg.Owner == "" || cfg.Name == "" {
		return nil, fmt.Errorf("%w: repository URL was not validated", contract.ErrInvalidRepoURL)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	snap, err := fetcher.Fetch(fetchCtx, cfg.Owner, cfg.Name)
	if err != nil {
		return nil, fmt.Errorf("fetch %s/%s: %w", cfg.Owner, cfg.Name, err)
	}

	results := Evaluate(snap, catalog)
	categories, overall := Aggregate(results, catalog)
	recommendations := CollectRecommendations(results, catalog)

	report := &schema.ComplianceReport{
		ID:              uuid.NewString(),
		RepoURL:         snap.RepoURL,
		RepoName:        schema.FormatRepoName(snap.Owner, snap.Name),
		OverallScore:    overall,
		Categories:      categories,
		Recommendations: recommendations,
		CreatedAt:       time.Now().UTC(),
	}

	if err := store.Save(ctx, report); err != nil {
		return nil, fmt.Errorf("save report %s: %w", report.ID, err)
	}
	return report, nil
}

// ExecuteCheck runs the check command: validate, score, persist, present.
func ExecuteCheck(ctx context.Context, cfg *contract.Config, fetcher contract.SnapshotFetcher, mgr contract.StoreManager) error {
	start := time.Now()

	catalog, err := LoadCatalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	report, err := RunCheck(ctx, cfg, catalog, fetcher, mgr.GetReportStore())
	if err != nil {
		return err
	}

	return outwriter.WriteReport(report, cfg, time.Since(start))
}

// RenderStored looks up a stored report and renders it as a downloadable
// document. It derives the output solely from the stored record: no
// re-fetch, no re-evaluation, so rendering the same report twice yields
// byte-identical output.
func RenderStored(ctx context.Context, store contract.ReportStore, reportID string) ([]byte, error) {
	report, err := store.Get(ctx, reportID)
	if err != nil {
		return nil, err
	}
	return render.Markdown(report)
}

// ExecuteDownload runs the download command: retrieve, render, write bytes.
func ExecuteDownload(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, reportID string) error {
	doc, err := RenderStored(ctx, mgr.GetReportStore(), reportID)
	if err != nil {
		return err
	}

	if cfg.OutputFile != "" {
		if err := os.WriteFile(cfg.OutputFile, doc, 0o644); err != nil {
			return fmt.Errorf("write document: %w", err)
		}
		fmt.Printf("Wrote report %s to %s\n", reportID, cfg.OutputFile)
		return nil
	}
	_, err = os.Stdout.Write(doc)
	return err
}

// ExecuteCatalog prints the rubric definitions: every checkpoint with its
// category, weight and description.
func ExecuteCatalog(cfg *contract.Config) error {
	catalog, err := LoadCatalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	rows := make([]outwriter.CatalogRow, 0, catalog.Size())
	for _, id := range schema.CategoryOrder {
		for _, cp := range catalog.CategoryCheckpoints(id) {
			rows = append(rows, outwriter.CatalogRow{
				CheckpointID: cp.ID,
				Category:     schema.CategoryNames[id],
				Points:       cp.Points,
				Description:  cp.Description,
			})
		}
	}
	return outwriter.WriteCatalog(rows, cfg)
}

// ExecuteReportList prints stored reports, newest first. Diagnostic use.
func ExecuteReportList(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	reports, err := mgr.GetReportStore().List(ctx)
	if err != nil {
		return fmt.Errorf("list reports: %w", err)
	}
	if len(reports) > cfg.ListLimit {
		reports = reports[:cfg.ListLimit]
	}
	return outwriter.WriteReportList(reports, cfg)
}
