// Package export renders a calculation result as an .xlsx workbook for
// download: one sheet with the replenishment lines, one with the depot
// truck loads.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/restockd/replenishment-service/internal/domain/model"
)

const (
	linesSheet  = "Réapprovisionnement"
	depotsSheet = "Dépôts"
)

var lineHeaders = []string{
	"Article", "Dépôt", "Conditionnement", "CQM", "Stock dépôt", "En transit",
	"Quantité requise", "À expédier", "Stock central", "Unités/palette",
	"Palettes", "Jours de couverture", "Statut", "Approvisionnement",
}

var depotHeaders = []string{
	"Dépôt", "Palettes totales", "Lignes", "Camions", "Efficacité", "Palettes manquantes",
}

// statusFills maps a line status to its cell fill color, matching the color
// hints of the JSON contract.
var statusFills = map[string]string{
	model.StatusOK:        "C6EFCE",
	model.StatusPartial:   "FFEB9C",
	model.StatusUncovered: "FFC7CE",
}

// BuildWorkbook renders the result into a workbook and returns the .xlsx
// bytes.
func BuildWorkbook(result model.CalculationResult) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), linesSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(depotsSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
	})
	if err != nil {
		return nil, err
	}

	if err := writeLines(f, headerStyle, result.Lines); err != nil {
		return nil, err
	}
	if err := writeDepots(f, headerStyle, result.Depots); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func writeHeader(f *excelize.File, sheet string, style int, headers []string) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeLines(f *excelize.File, headerStyle int, lines []model.ReplenishmentLine) error {
	if err := writeHeader(f, linesSheet, headerStyle, lineHeaders); err != nil {
		return err
	}

	styles := make(map[string]int, len(statusFills))
	for status, color := range statusFills {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		})
		if err != nil {
			return err
		}
		styles[status] = id
	}

	for i, line := range lines {
		row := i + 2
		values := []any{
			line.Article, line.Depot, line.Packaging, line.DailyDemand,
			line.CurrentStock, line.TransitQty, line.RequiredQuantity,
			line.QuantityToShip, line.CentralAvailable, line.UnitsPerPallet,
			line.PalettesNeeded, line.DaysOfCoverage, line.Status,
			line.SourcingText,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(linesSheet, cell, &values); err != nil {
			return err
		}
		if style, ok := styles[line.Status]; ok {
			statusCell := fmt.Sprintf("M%d", row)
			if err := f.SetCellStyle(linesSheet, statusCell, statusCell, style); err != nil {
				return err
			}
		}
	}

	return f.SetColWidth(linesSheet, "A", "N", 16)
}

func writeDepots(f *excelize.File, headerStyle int, depots []model.DepotLoad) error {
	if err := writeHeader(f, depotsSheet, headerStyle, depotHeaders); err != nil {
		return err
	}

	for i, d := range depots {
		values := []any{
			d.Depot, d.TotalPalettes, d.TotalItems, d.TrucksNeeded,
			d.Efficiency, d.MissingPalettes,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(depotsSheet, cell, &values); err != nil {
			return err
		}
	}

	return f.SetColWidth(depotsSheet, "A", "F", 18)
}
