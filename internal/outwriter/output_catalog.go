package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/repograde/repograde/internal/contract"
	"github.com/repograde/repograde/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteCatalog outputs the rubric definitions, dispatching on the
// configured output format.
func WriteCatalog(rows []CatalogRow, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"checkpoint_id", "category", "points", "description"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, row := range rows {
					record := []string{row.CheckpointID, row.Category, strconv.Itoa(row.Points), row.Description}
					if err := csvWriter.Write(record); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCatalogTable(w, rows, cfg)
		}, "Wrote table")
	}
}

// writeCatalogTable prints the human-readable rubric table.
func writeCatalogTable(w io.Writer, rows []CatalogRow, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Checkpoint", "Category", "Points", "Description"})

	maxWidth := getMaxDescriptionWidth(cfg)
	var data [][]string
	for _, row := range rows {
		data = append(data, []string{
			row.CheckpointID,
			row.Category,
			strconv.Itoa(row.Points),
			contract.TruncateText(row.Description, maxWidth),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
