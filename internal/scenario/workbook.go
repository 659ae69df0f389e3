package scenario

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/yankputra/SPK-AlatMusikKesenian/ahp"
	"github.com/yankputra/SPK-AlatMusikKesenian/criteria"
	"github.com/yankputra/SPK-AlatMusikKesenian/decision"
)

// Sheets names the worksheets of a scenario workbook.
type Sheets struct {
	Criteria string
	AHP      string
	Weights  string
	Dataset  string
}

// DefaultSheets returns the standard sheet names.
func DefaultSheets() Sheets {
	return Sheets{Criteria: "Criteria", AHP: "AHP", Weights: "Weights", Dataset: "Dataset"}
}

// LoadWorkbook reads a scenario from an xlsx workbook.
//
// Layout, each sheet with a header row:
//   - Criteria: Code | Label | Polarity (benefit/cost).
//   - AHP: pairwise matrix, criterion codes across the header row and down
//     the first column. Only the upper triangle is read; the lower triangle
//     is rebuilt as exact reciprocals so rounded cells such as 0.333 do not
//     fail the reciprocity check.
//   - Weights: Code | Weight. Used when the AHP sheet is absent.
//   - Dataset: Alternative | one column per criterion code.
//
// A workbook without the Criteria sheet is read in the fixed app layout
// instead, see loadAppLayout.
//
// Cells may hold numbers, decimal-comma text or fractions like "1/3".
func LoadWorkbook(path string, sheets Sheets) (*Scenario, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open file")
	}

	s := &Scenario{
		Name:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Source: path,
	}

	if !hasSheet(f, sheets.Criteria) {
		return loadAppLayout(f, s, sheets)
	}

	critRows, err := sheetRows(f, sheets.Criteria)
	if err != nil {
		return nil, err
	}
	if s.Criteria, err = parseCriteria(critRows); err != nil {
		return nil, eris.Wrapf(err, "xlsx: sheet %q", sheets.Criteria)
	}
	codes := make([]string, len(s.Criteria))
	for i, c := range s.Criteria {
		codes[i] = c.Code
	}

	switch {
	case hasSheet(f, sheets.AHP):
		rows, err := sheetRows(f, sheets.AHP)
		if err != nil {
			return nil, err
		}
		if s.Comparisons, err = parseComparisons(rows, codes); err != nil {
			return nil, eris.Wrapf(err, "xlsx: sheet %q", sheets.AHP)
		}
	case hasSheet(f, sheets.Weights):
		rows, err := sheetRows(f, sheets.Weights)
		if err != nil {
			return nil, err
		}
		if s.Weights, err = parseWeights(rows, codes); err != nil {
			return nil, eris.Wrapf(err, "xlsx: sheet %q", sheets.Weights)
		}
	default:
		return nil, eris.Errorf("xlsx: neither sheet %q nor %q found", sheets.AHP, sheets.Weights)
	}

	dataRows, err := sheetRows(f, sheets.Dataset)
	if err != nil {
		return nil, err
	}
	if s.Alternatives, err = parseDataset(dataRows, codes); err != nil {
		return nil, eris.Wrapf(err, "xlsx: sheet %q", sheets.Dataset)
	}

	return s, nil
}

func hasSheet(f *xlsx.File, name string) bool {
	_, ok := f.Sheet[name]
	return ok && name != ""
}

// sheetRows returns the non-empty rows of a sheet as trimmed cells.
func sheetRows(f *xlsx.File, name string) ([][]*xlsx.Cell, error) {
	sheet, ok := f.Sheet[name]
	if !ok {
		return nil, eris.Errorf("xlsx: sheet %q not found", name)
	}
	var out [][]*xlsx.Cell
	for _, row := range sheet.Rows {
		if row == nil || blank(row.Cells) {
			continue
		}
		out = append(out, row.Cells)
	}
	if len(out) < 2 {
		return nil, eris.Errorf("xlsx: sheet %q needs a header row and at least one data row", name)
	}
	return out, nil
}

func blank(cells []*xlsx.Cell) bool {
	for _, c := range cells {
		if text(c) != "" {
			return false
		}
	}
	return true
}

func text(c *xlsx.Cell) string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.String())
}

func cellAt(cells []*xlsx.Cell, j int) *xlsx.Cell {
	if j < len(cells) {
		return cells[j]
	}
	return nil
}

// number reads a numeric cell, falling back to parsing its text.
func number(c *xlsx.Cell) (float64, error) {
	if c == nil {
		return 0, eris.New("missing cell")
	}
	if v, err := c.Float(); err == nil {
		return v, nil
	}
	return parseNumber(c.String())
}

func parseCriteria(rows [][]*xlsx.Cell) ([]criteria.Criterion, error) {
	var out []criteria.Criterion
	for i, row := range rows[1:] {
		code := text(cellAt(row, 0))
		if code == "" {
			continue
		}
		pol, err := criteria.ParsePolarity(text(cellAt(row, 2)))
		if err != nil {
			return nil, eris.Wrapf(err, "row %d", i+2)
		}
		out = append(out, criteria.Criterion{Code: code, Label: text(cellAt(row, 1)), Polarity: pol})
	}
	if len(out) == 0 {
		return nil, eris.New("no criteria")
	}
	return out, nil
}

// headerIndex maps each criterion code to its column in the header row.
func headerIndex(header []*xlsx.Cell, codes []string) (map[string]int, error) {
	idx := make(map[string]int, len(codes))
	for j := 1; j < len(header); j++ {
		if code := text(header[j]); code != "" {
			idx[code] = j
		}
	}
	for _, code := range codes {
		if _, ok := idx[code]; !ok {
			return nil, eris.Errorf("header has no column %q", code)
		}
	}
	return idx, nil
}

func parseComparisons(rows [][]*xlsx.Cell, codes []string) ([]float64, error) {
	cols, err := headerIndex(rows[0], codes)
	if err != nil {
		return nil, err
	}
	byCode := make(map[string][]*xlsx.Cell, len(rows)-1)
	for _, row := range rows[1:] {
		if code := text(cellAt(row, 0)); code != "" {
			byCode[code] = row
		}
	}

	n := len(codes)
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		row, ok := byCode[codes[i]]
		if !ok {
			return nil, eris.Errorf("no row for criterion %q", codes[i])
		}
		for j := i + 1; j < n; j++ {
			v, err := number(cellAt(row, cols[codes[j]]))
			if err != nil {
				return nil, eris.Wrapf(err, "comparison %s/%s", codes[i], codes[j])
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func parseWeights(rows [][]*xlsx.Cell, codes []string) ([]float64, error) {
	byCode := make(map[string]float64, len(rows)-1)
	for _, row := range rows[1:] {
		code := text(cellAt(row, 0))
		if code == "" {
			continue
		}
		v, err := number(cellAt(row, 1))
		if err != nil {
			return nil, eris.Wrapf(err, "weight of %q", code)
		}
		byCode[code] = v
	}
	out := make([]float64, len(codes))
	for i, code := range codes {
		v, ok := byCode[code]
		if !ok {
			return nil, eris.Errorf("no weight for criterion %q", code)
		}
		out[i] = v
	}
	return out, nil
}

func parseDataset(rows [][]*xlsx.Cell, codes []string) ([]decision.Alternative, error) {
	cols, err := headerIndex(rows[0], codes)
	if err != nil {
		return nil, err
	}
	var out []decision.Alternative
	for i, row := range rows[1:] {
		id := text(cellAt(row, 0))
		if id == "" {
			continue
		}
		scores := make([]float64, len(codes))
		for j, code := range codes {
			v, err := number(cellAt(row, cols[code]))
			if err != nil {
				return nil, eris.Wrapf(err, "row %d (%s), column %q", i+2, id, code)
			}
			scores[j] = v
		}
		out = append(out, decision.Alternative{ID: id, Scores: scores})
	}
	if len(out) == 0 {
		return nil, eris.New("no alternatives")
	}
	return out, nil
}

// Column positions of the app layout.
const (
	appCodeCol     = 0 // Dataset: criterion code
	appLabelCol    = 1 // Dataset: criterion label
	appPolarityCol = 2 // Dataset: optional polarity
	appAltCol      = 4 // Dataset: alternative name
	appScoreCol    = 5 // Dataset: first score column, one per criterion
	appWeightCol   = 6 // AHP: criterion weight
)

// appPolarities applies when the polarity column is blank: the app rates
// four benefit criteria and a final cost criterion (price).
var appPolarities = []criteria.Polarity{
	criteria.Benefit, criteria.Benefit, criteria.Benefit, criteria.Benefit, criteria.Cost,
}

// loadAppLayout reads the positional workbook of the original dashboard:
//   - Dataset, no header semantics: criteria from row 1 down in columns 0-1
//     until the first blank code; alternatives from row 1 down in column 4
//     with scores in columns 5.. in criteria order.
//   - AHP, one header row: the weight of criterion k in column 6 of row k+1.
//
// Weights are rescaled to sum 1 since the sheet stores rounded values.
func loadAppLayout(f *xlsx.File, s *Scenario, sheets Sheets) (*Scenario, error) {
	data, err := rawRows(f, sheets.Dataset)
	if err != nil {
		return nil, err
	}
	if s.Criteria, err = parseAppCriteria(data); err != nil {
		return nil, eris.Wrapf(err, "xlsx: sheet %q", sheets.Dataset)
	}
	n := len(s.Criteria)
	if s.Alternatives, err = parseAppAlternatives(data, n); err != nil {
		return nil, eris.Wrapf(err, "xlsx: sheet %q", sheets.Dataset)
	}

	weights, err := rawRows(f, sheets.AHP)
	if err != nil {
		return nil, err
	}
	if len(weights) < n+1 {
		return nil, eris.Errorf("xlsx: sheet %q has %d weight rows, want %d", sheets.AHP, len(weights)-1, n)
	}
	values := make([]float64, n)
	for k := range values {
		v, err := number(cellAt(weights[k+1], appWeightCol))
		if err != nil {
			return nil, eris.Wrapf(err, "xlsx: sheet %q: weight of %q", sheets.AHP, s.Criteria[k].Code)
		}
		values[k] = v
	}
	w, err := ahp.NormalizeWeights(values)
	if err != nil {
		return nil, eris.Wrapf(err, "xlsx: sheet %q", sheets.AHP)
	}
	s.Weights = w.Values()

	return s, nil
}

// rawRows returns every row of a sheet, blank ones included, so positions
// match the sheet.
func rawRows(f *xlsx.File, name string) ([][]*xlsx.Cell, error) {
	sheet, ok := f.Sheet[name]
	if !ok {
		return nil, eris.Errorf("xlsx: sheet %q not found", name)
	}
	out := make([][]*xlsx.Cell, len(sheet.Rows))
	for i, row := range sheet.Rows {
		if row != nil {
			out[i] = row.Cells
		}
	}
	if len(out) < 2 {
		return nil, eris.Errorf("xlsx: sheet %q needs a header row and at least one data row", name)
	}
	return out, nil
}

func parseAppCriteria(rows [][]*xlsx.Cell) ([]criteria.Criterion, error) {
	var out []criteria.Criterion
	for i := 1; i < len(rows); i++ {
		code := text(cellAt(rows[i], appCodeCol))
		if code == "" {
			break
		}
		k := len(out)
		var pol criteria.Polarity
		switch p := text(cellAt(rows[i], appPolarityCol)); {
		case p != "":
			var err error
			if pol, err = criteria.ParsePolarity(p); err != nil {
				return nil, eris.Wrapf(err, "row %d", i+1)
			}
		case k < len(appPolarities):
			pol = appPolarities[k]
		default:
			return nil, eris.Errorf("row %d: no polarity for criterion %q", i+1, code)
		}
		out = append(out, criteria.Criterion{Code: code, Label: text(cellAt(rows[i], appLabelCol)), Polarity: pol})
	}
	if len(out) == 0 {
		return nil, eris.New("no criteria")
	}
	return out, nil
}

func parseAppAlternatives(rows [][]*xlsx.Cell, n int) ([]decision.Alternative, error) {
	var out []decision.Alternative
	for i := 1; i < len(rows); i++ {
		id := text(cellAt(rows[i], appAltCol))
		if id == "" {
			continue
		}
		scores := make([]float64, n)
		for j := range scores {
			v, err := number(cellAt(rows[i], appScoreCol+j))
			if err != nil {
				return nil, eris.Wrapf(err, "row %d (%s), score %d", i+1, id, j+1)
			}
			scores[j] = v
		}
		out = append(out, decision.Alternative{ID: id, Scores: scores})
	}
	if len(out) == 0 {
		return nil, eris.New("no alternatives")
	}
	return out, nil
}
