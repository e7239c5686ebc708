// Package ingest parses uploaded .xlsx datasets into domain rows. Column
// positions are resolved from the header row, so supplier exports with
// reordered or renamed columns still load, and every row-cleaning rule is
// applied here before the data reaches the stores.
package ingest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/restockd/replenishment-service/internal/apperr"
	"github.com/restockd/replenishment-service/internal/domain/model"
	"github.com/restockd/replenishment-service/internal/refdata"
)

// Parser turns uploaded workbooks into cleaned dataset rows.
type Parser struct {
	centralWarehouse string
	ref              refdata.RefData
}

// NewParser creates a Parser cleaning rows against the given central
// warehouse code and reference data.
func NewParser(centralWarehouse string, ref refdata.RefData) *Parser {
	return &Parser{
		centralWarehouse: strings.TrimSpace(centralWarehouse),
		ref:              ref,
	}
}

// Result reports how an upload was ingested.
type Result struct {
	// Retained is the number of rows that survived cleaning.
	Retained int
	// Dropped is the number of data rows discarded by the cleaning rules.
	Dropped int
}

// accentFold strips the accents seen in French export headers so matching
// works on whatever variant the source system emits.
var accentFold = strings.NewReplacer(
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"à", "a", "â", "a",
	"î", "i", "ï", "i",
	"ô", "o",
	"ù", "u", "û", "u", "ü", "u",
	"ç", "c",
)

func normalizeHeader(h string) string {
	return accentFold.Replace(strings.ToLower(strings.TrimSpace(h)))
}

// column resolves a header cell to a field by candidate names.
type column struct {
	field      string
	candidates []string
	required   bool
}

// resolveColumns maps each field to its column index in the header row.
// Missing required columns make the whole upload invalid.
func resolveColumns(header []string, cols []column) (map[string]int, error) {
	idx := make(map[string]int, len(cols))
	for i, raw := range header {
		name := normalizeHeader(raw)
		if name == "" {
			continue
		}
		for _, c := range cols {
			if _, done := idx[c.field]; done {
				continue
			}
			for _, cand := range c.candidates {
				if name == cand {
					idx[c.field] = i
					break
				}
			}
		}
	}
	for _, c := range cols {
		if _, ok := idx[c.field]; !ok && c.required {
			return nil, fmt.Errorf("%w: missing required column %q", apperr.ErrInvalidUpload, c.candidates[0])
		}
	}
	return idx, nil
}

func cellAt(row []string, idx map[string]int, field string) (string, bool) {
	i, ok := idx[field]
	if !ok || i >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[i]), true
}

// parseNumber reads a numeric cell, accepting the French thousands/decimal
// conventions ("1 234,56") alongside plain floats.
func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// readRows opens the workbook and returns the rows of its first sheet.
func readRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read workbook: %v", apperr.ErrInvalidUpload, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", apperr.ErrInvalidUpload)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read rows: %v", apperr.ErrInvalidUpload, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: workbook needs a header row and at least one data row", apperr.ErrInvalidUpload)
	}
	return rows, nil
}

var orderColumns = []column{
	{field: "article", candidates: []string{"article", "code article", "reference"}, required: true},
	{field: "depot", candidates: []string{"depot", "division", "site"}, required: true},
	{field: "packaging", candidates: []string{"conditionnement", "emballage", "packaging"}, required: true},
	{field: "quantity", candidates: []string{"cqm", "quantite commandee", "qte commandee", "quantite"}, required: true},
	{field: "freeStock", candidates: []string{"stock libre", "stock depot", "stock"}},
	{field: "unitsPerPallet", candidates: []string{"unites par palette", "uc par palette", "up"}, required: true},
}

// ParseOrders reads an order workbook and applies the order cleaning rules:
// rows targeting the central warehouse or a disallowed depot are dropped, as
// are rows missing article, depot, packaging, quantity, or a positive
// units-per-pallet. Missing free stock defaults to zero.
func (p *Parser) ParseOrders(r io.Reader) ([]model.OrderLine, Result, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, Result{}, err
	}
	idx, err := resolveColumns(rows[0], orderColumns)
	if err != nil {
		return nil, Result{}, err
	}

	lines := make([]model.OrderLine, 0, len(rows)-1)
	dropped := 0
	for _, row := range rows[1:] {
		article, _ := cellAt(row, idx, "article")
		depot, _ := cellAt(row, idx, "depot")
		packaging, _ := cellAt(row, idx, "packaging")
		qtyRaw, _ := cellAt(row, idx, "quantity")
		uppRaw, _ := cellAt(row, idx, "unitsPerPallet")

		qty, qtyOK := parseNumber(qtyRaw)
		upp, uppOK := parseNumber(uppRaw)

		if article == "" || depot == "" || packaging == "" || !qtyOK || !uppOK || upp <= 0 {
			dropped++
			continue
		}
		if depot == p.centralWarehouse || !p.ref.Depots.Allows(depot) {
			dropped++
			continue
		}

		freeStock := 0.0
		if raw, ok := cellAt(row, idx, "freeStock"); ok {
			if v, ok := parseNumber(raw); ok {
				freeStock = v
			}
		}

		lines = append(lines, model.OrderLine{
			Article:         article,
			Depot:           depot,
			Packaging:       p.ref.Packaging.Normalize(packaging),
			OrderedQuantity: qty,
			FreeStock:       freeStock,
			UnitsPerPallet:  upp,
		})
	}
	return lines, Result{Retained: len(lines), Dropped: dropped}, nil
}

var stockColumns = []column{
	{field: "article", candidates: []string{"article", "code article", "reference"}, required: true},
	{field: "division", candidates: []string{"division", "depot", "site"}, required: true},
	{field: "quantity", candidates: []string{"stock disponible", "quantite disponible", "disponible", "quantite"}, required: true},
}

// ParseCentralStock reads a stock workbook and retains only the rows whose
// division is the central warehouse.
func (p *Parser) ParseCentralStock(r io.Reader) ([]model.CentralStockEntry, Result, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, Result{}, err
	}
	idx, err := resolveColumns(rows[0], stockColumns)
	if err != nil {
		return nil, Result{}, err
	}

	entries := make([]model.CentralStockEntry, 0, len(rows)-1)
	dropped := 0
	for _, row := range rows[1:] {
		article, _ := cellAt(row, idx, "article")
		division, _ := cellAt(row, idx, "division")
		qtyRaw, _ := cellAt(row, idx, "quantity")
		qty, qtyOK := parseNumber(qtyRaw)

		if article == "" || !qtyOK || division != p.centralWarehouse {
			dropped++
			continue
		}
		entries = append(entries, model.CentralStockEntry{
			Article:           article,
			AvailableQuantity: qty,
		})
	}
	return entries, Result{Retained: len(entries), Dropped: dropped}, nil
}

var transitColumns = []column{
	{field: "article", candidates: []string{"article", "code article", "reference"}, required: true},
	{field: "origin", candidates: []string{"origine", "provenance", "depart"}, required: true},
	{field: "destination", candidates: []string{"destination", "depot destination", "depot"}, required: true},
	{field: "quantity", candidates: []string{"quantite", "qte", "quantite en transit"}, required: true},
}

// ParseTransit reads an in-transit workbook and retains only shipments
// leaving the central warehouse.
func (p *Parser) ParseTransit(r io.Reader) ([]model.TransitEntry, Result, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, Result{}, err
	}
	idx, err := resolveColumns(rows[0], transitColumns)
	if err != nil {
		return nil, Result{}, err
	}

	entries := make([]model.TransitEntry, 0, len(rows)-1)
	dropped := 0
	for _, row := range rows[1:] {
		article, _ := cellAt(row, idx, "article")
		origin, _ := cellAt(row, idx, "origin")
		destination, _ := cellAt(row, idx, "destination")
		qtyRaw, _ := cellAt(row, idx, "quantity")
		qty, qtyOK := parseNumber(qtyRaw)

		if article == "" || destination == "" || !qtyOK || origin != p.centralWarehouse {
			dropped++
			continue
		}
		entries = append(entries, model.TransitEntry{
			Article:          article,
			DestinationDepot: destination,
			Quantity:         qty,
		})
	}
	return entries, Result{Retained: len(entries), Dropped: dropped}, nil
}
