package scenario

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/yankputra/SPK-AlatMusikKesenian/ahp"
	"github.com/yankputra/SPK-AlatMusikKesenian/criteria"
	"github.com/yankputra/SPK-AlatMusikKesenian/decision"
	"github.com/yankputra/SPK-AlatMusikKesenian/topsis"
)

const instrumentsYAML = `
name: instruments
criteria:
  - {code: C1, label: Sound quality, polarity: benefit}
  - {code: C2, label: Cultural value, polarity: benefit}
  - {code: C3, label: Durability, polarity: benefit}
  - {code: C4, label: Portability, polarity: benefit}
  - {code: C5, label: Price, polarity: cost}
weights: [0.40, 0.25, 0.20, 0.10, 0.05]
alternatives:
  - {id: A, scores: [5, 5, 5, 5, 1]}
  - {id: B, scores: [3, 3, 3, 3, 3]}
  - {id: C, scores: [1, 1, 1, 1, 5]}
`

func decode(t *testing.T, doc string) *Scenario {
	t.Helper()
	s, err := DecodeYAML(strings.NewReader(doc))
	require.NoError(t, err)
	return s
}

func TestDecodeYAML(t *testing.T) {
	s := decode(t, instrumentsYAML)
	assert.Equal(t, "instruments", s.Name)
	require.Len(t, s.Criteria, 5)
	assert.Equal(t, criteria.Cost, s.Criteria[4].Polarity)
	assert.Equal(t, "Sound quality", s.Criteria[0].Label)
	require.Len(t, s.Alternatives, 3)
	assert.Equal(t, []float64{1, 1, 1, 1, 5}, s.Alternatives[2].Scores)

	src, err := s.WeightSource()
	require.NoError(t, err)
	assert.Equal(t, SourceWeights, src)
}

func TestDecodeYAML_Errors(t *testing.T) {
	_, err := DecodeYAML(strings.NewReader(""))
	assert.Error(t, err)

	_, err = DecodeYAML(strings.NewReader("name: x\nweigths: [1]\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = DecodeYAML(strings.NewReader("criteria:\n  - {code: C1, polarity: sideways}\n"))
	assert.ErrorIs(t, err, criteria.ErrInvalidPolarity)
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	s := decode(t, instrumentsYAML)
	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(&buf, s))
	assert.Contains(t, buf.String(), "polarity: cost")

	back := decode(t, buf.String())
	assert.Equal(t, s.Criteria, back.Criteria)
	assert.Equal(t, s.Alternatives, back.Alternatives)
}

func TestWeightSource(t *testing.T) {
	s := &Scenario{Name: "x", Criteria: make([]criteria.Criterion, 2)}
	_, err := s.WeightSource()
	assert.Error(t, err)

	s.Weights = []float64{0.5, 0.5}
	s.Comparisons = []float64{2}
	_, err = s.WeightSource()
	assert.Error(t, err)

	one := &Scenario{Criteria: make([]criteria.Criterion, 1)}
	src, err := one.WeightSource()
	require.NoError(t, err)
	assert.Equal(t, SourceComparisons, src)
}

func TestEvaluate_EndToEnd(t *testing.T) {
	out, err := Evaluate(context.Background(), decode(t, instrumentsYAML), DefaultOptions())
	require.NoError(t, err)

	assert.NotEmpty(t, out.RunID)
	assert.Equal(t, "instruments", out.Scenario)
	assert.Equal(t, "vector", out.Normalization)
	assert.Nil(t, out.Consistency)
	assert.Equal(t, SourceWeights, out.Source)

	top, ok := out.Ranking.Top()
	require.True(t, ok)
	assert.Equal(t, "A", top.Alternative)
	assert.Equal(t, topsis.VeryGood, top.Verdict)
	assert.Equal(t, "C", out.Ranking.Rows[2].Alternative)
}

func TestEvaluate_Comparisons(t *testing.T) {
	doc := `
criteria:
  - {code: C1, polarity: benefit}
  - {code: C2, polarity: benefit}
  - {code: C3, polarity: cost}
comparisons: [3, 5, 2]
normalization: linear
alternatives:
  - {id: x, scores: [4, 2, 3]}
  - {id: y, scores: [2, 4, 1]}
`
	out, err := Evaluate(context.Background(), decode(t, doc), DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, out.Consistency)
	assert.True(t, out.Consistency.Acceptable)
	assert.Equal(t, 3, out.Consistency.N)
	assert.Equal(t, "linear", out.Normalization)
	assert.InDelta(t, 0.6483, out.Vector.At(0), 1e-4)
}

func TestEvaluate_Pairwise(t *testing.T) {
	s := &Scenario{
		Name: "pairwise",
		Criteria: []criteria.Criterion{
			{Code: "C1", Polarity: criteria.Benefit},
			{Code: "C2", Polarity: criteria.Cost},
		},
		Pairwise:     [][]float64{{1, 3}, {1.0 / 3, 1}},
		Alternatives: []decision.Alternative{{ID: "a", Scores: []float64{1, 2}}, {ID: "b", Scores: []float64{2, 1}}},
	}
	opts := DefaultOptions()
	opts.Method = ahp.Eigenvector
	out, err := Evaluate(context.Background(), s, opts)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.75, 0.25}, out.Vector.Values(), 1e-9)
	assert.Equal(t, "eigenvector", out.Consistency.Method)
	assert.Equal(t, "b", out.Ranking.Rows[0].Alternative)
}

func TestEvaluate_Errors(t *testing.T) {
	base := func() *Scenario { return decode(t, instrumentsYAML) }

	s := base()
	s.Weights = []float64{0.5, 0.5}
	_, err := Evaluate(context.Background(), s, DefaultOptions())
	assert.Error(t, err)

	s = base()
	s.Alternatives[1].Scores[0] = -1
	_, err = Evaluate(context.Background(), s, DefaultOptions())
	assert.ErrorIs(t, err, decision.ErrNegativeScore)

	s = base()
	s.Weights = nil
	s.Comparisons = []float64{1, 2}
	_, err = Evaluate(context.Background(), s, DefaultOptions())
	assert.ErrorIs(t, err, ahp.ErrInvalidComparisonMatrix)

	s = base()
	s.Normalization = "zscore"
	_, err = Evaluate(context.Background(), s, DefaultOptions())
	assert.Error(t, err)

	s = base()
	s.Criteria[1].Code = "C1"
	_, err = Evaluate(context.Background(), s, DefaultOptions())
	assert.ErrorIs(t, err, criteria.ErrDuplicateCode)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Evaluate(ctx, base(), DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEvaluateAll(t *testing.T) {
	good := decode(t, instrumentsYAML)
	bad := decode(t, instrumentsYAML)
	bad.Name = "broken"
	bad.Weights = []float64{1}
	other := decode(t, instrumentsYAML)
	other.Name = "again"

	items, err := EvaluateAll(context.Background(), []*Scenario{good, bad, other}, DefaultOptions(), 2)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "instruments", items[0].Scenario)
	assert.NoError(t, items[0].Err)
	assert.NotNil(t, items[0].Outcome)

	assert.Equal(t, "broken", items[1].Scenario)
	assert.Error(t, items[1].Err)
	assert.Nil(t, items[1].Outcome)

	assert.Equal(t, "again", items[2].Scenario)
	assert.NotNil(t, items[2].Outcome)
	assert.NotEqual(t, items[0].Outcome.RunID, items[2].Outcome.RunID)
}

func TestEvaluateAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	items, err := EvaluateAll(ctx, []*Scenario{decode(t, instrumentsYAML)}, DefaultOptions(), 1)
	assert.True(t, errors.Is(err, context.Canceled))
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Outcome)

	items, err = EvaluateAll(context.Background(), nil, DefaultOptions(), 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestParseNumber(t *testing.T) {
	for in, want := range map[string]float64{
		"3":     3,
		" 0.25": 0.25,
		"0,25":  0.25,
		"1/3":   1.0 / 3,
		"1/0,5": 2,
	} {
		got, err := parseNumber(in)
		require.NoError(t, err, in)
		assert.InDelta(t, want, got, 1e-15, in)
	}
	for _, in := range []string{"", "abc", "1/0", "x/2"} {
		_, err := parseNumber(in)
		assert.Error(t, err, in)
	}
}

type sheet struct {
	name string
	rows [][]any
}

func createWorkbook(t *testing.T, sheets ...sheet) string {
	t.Helper()
	f := xlsx.NewFile()
	for _, sh := range sheets {
		s, err := f.AddSheet(sh.name)
		require.NoError(t, err)
		for _, rowData := range sh.rows {
			row := s.AddRow()
			for _, v := range rowData {
				cell := row.AddCell()
				switch x := v.(type) {
				case float64:
					cell.SetFloat(x)
				case int:
					cell.SetInt(x)
				default:
					cell.SetString(x.(string))
				}
			}
		}
	}
	path := filepath.Join(t.TempDir(), "spk.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

var criteriaSheet = sheet{"Criteria", [][]any{
	{"Code", "Label", "Polarity"},
	{"C1", "Sound quality", "Benefit"},
	{"C2", "Durability", "benefit"},
	{"C3", "Price", "Cost"},
}}

var datasetSheet = sheet{"Dataset", [][]any{
	// columns deliberately out of criteria order
	{"Alternative", "C3", "C1", "C2"},
	{"Kendang", 2, 5, 4},
	{"Gong Ageng", 4, 4, 5},
	{"Suling", 1, "3", "2,5"},
	{"", "", "", ""},
}}

func TestLoadWorkbook_AHP(t *testing.T) {
	path := createWorkbook(t, criteriaSheet, datasetSheet, sheet{"AHP", [][]any{
		{"", "C1", "C2", "C3"},
		{"C1", 1, 3, 5},
		{"C2", 0.333, 1, 2},
		{"C3", "1/5", 0.5, 1},
	}})

	s, err := LoadWorkbook(path, DefaultSheets())
	require.NoError(t, err)
	assert.Equal(t, "spk", s.Name)
	require.Len(t, s.Criteria, 3)
	assert.Equal(t, criteria.Cost, s.Criteria[2].Polarity)
	assert.Equal(t, []float64{3, 5, 2}, s.Comparisons)
	require.Len(t, s.Alternatives, 3)
	assert.Equal(t, decision.Alternative{ID: "Kendang", Scores: []float64{5, 4, 2}}, s.Alternatives[0])
	assert.Equal(t, []float64{3, 2.5, 1}, s.Alternatives[2].Scores)

	out, err := Evaluate(context.Background(), s, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, out.Consistency.Acceptable)
	assert.Len(t, out.Ranking.Rows, 3)
}

func TestLoadWorkbook_Weights(t *testing.T) {
	path := createWorkbook(t, criteriaSheet, datasetSheet, sheet{"Bobot", [][]any{
		{"Code", "Weight"},
		{"C3", 0.2},
		{"C1", 0.5},
		{"C2", 0.3},
	}})
	sheets := DefaultSheets()
	sheets.Weights = "Bobot"

	s, err := LoadFile(path, sheets)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.3, 0.2}, s.Weights)
	assert.Empty(t, s.Comparisons)
}

func TestLoadWorkbook_Errors(t *testing.T) {
	_, err := LoadWorkbook(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultSheets())
	assert.Error(t, err)

	noWeights := createWorkbook(t, criteriaSheet, datasetSheet)
	_, err = LoadWorkbook(noWeights, DefaultSheets())
	assert.Error(t, err)

	missingColumn := createWorkbook(t, criteriaSheet, sheet{"Weights", [][]any{{"Code", "Weight"}, {"C1", 1}}},
		sheet{"Dataset", [][]any{{"Alternative", "C1", "C2"}, {"x", 1, 2}}})
	_, err = LoadWorkbook(missingColumn, DefaultSheets())
	assert.Error(t, err)

	badPolarity := createWorkbook(t, sheet{"Criteria", [][]any{{"Code", "Label", "Polarity"}, {"C1", "x", "maybe"}}})
	_, err = LoadWorkbook(badPolarity, DefaultSheets())
	assert.ErrorIs(t, err, criteria.ErrInvalidPolarity)

	headerOnlyAHP := createWorkbook(t, criteriaSheet, datasetSheet, sheet{"AHP", [][]any{{"", "C1", "C2", "C3"}}})
	assert.NotPanics(t, func() {
		_, err = LoadWorkbook(headerOnlyAHP, DefaultSheets())
	})
	assert.ErrorContains(t, err, "needs a header row")

	headerOnlyWeights := createWorkbook(t, criteriaSheet, datasetSheet, sheet{"Weights", [][]any{{"Code", "Weight"}}})
	assert.NotPanics(t, func() {
		_, err = LoadWorkbook(headerOnlyWeights, DefaultSheets())
	})
	assert.ErrorContains(t, err, "needs a header row")
}

// appDataset mirrors the dashboard workbook: criteria in columns 0-1,
// alternatives in column 4, scores in columns 5-9, no Criteria sheet.
var appDataset = sheet{"Dataset", [][]any{
	{"Kode", "Kriteria", "", "", "Alternatif", "C1", "C2", "C3", "C4", "C5"},
	{"C1", "Kualitas Suara", "", "", "Kendang", 5, 5, 4, 4, 2},
	{"C2", "Daya Tahan", "", "", "Gong Ageng", 4, 5, 5, 3, 4},
	{"C3", "Kemudahan Dimainkan", "", "", "Suling", 3, 2, 5, 5, 1},
	{"C4", "Popularitas", "", "", "Angklung", 3, 3, 4, 5, 2},
	{"C5", "Harga", "", "", "Rebab", 2, 3, 3, 2, 3},
	{"", "", "", "", "Sasando", 4, 4, 3, 3, "4,5"},
}}

var appAHP = sheet{"AHP", [][]any{
	{"Kriteria", "C1", "C2", "C3", "C4", "C5", "Bobot"},
	{"Kualitas Suara", 1, 2, 2, 4, 8, 0.40},
	{"Daya Tahan", 0.5, 1, 1, 3, 5, 0.25},
	{"Kemudahan Dimainkan", 0.5, 1, 1, 2, 4, 0.20},
	{"Popularitas", 0.25, "1/3", 0.5, 1, 2, 0.10},
	{"Harga", 0.125, 0.2, 0.25, 0.5, 1, 0.05},
}}

func TestLoadWorkbook_AppLayout(t *testing.T) {
	path := createWorkbook(t, appDataset, appAHP)

	s, err := LoadWorkbook(path, DefaultSheets())
	require.NoError(t, err)
	require.Len(t, s.Criteria, 5)
	assert.Equal(t, criteria.Criterion{Code: "C1", Label: "Kualitas Suara", Polarity: criteria.Benefit}, s.Criteria[0])
	assert.Equal(t, criteria.Benefit, s.Criteria[3].Polarity)
	assert.Equal(t, criteria.Criterion{Code: "C5", Label: "Harga", Polarity: criteria.Cost}, s.Criteria[4])

	require.Len(t, s.Alternatives, 6)
	assert.Equal(t, decision.Alternative{ID: "Kendang", Scores: []float64{5, 5, 4, 4, 2}}, s.Alternatives[0])
	assert.Equal(t, decision.Alternative{ID: "Sasando", Scores: []float64{4, 4, 3, 3, 4.5}}, s.Alternatives[5])

	assert.InDeltaSlice(t, []float64{0.40, 0.25, 0.20, 0.10, 0.05}, s.Weights, 1e-12)
	assert.Empty(t, s.Comparisons)

	out, err := Evaluate(context.Background(), s, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, SourceWeights, out.Source)
	assert.Len(t, out.Ranking.Rows, 6)
}

func TestLoadWorkbook_AppLayoutRoundedWeights(t *testing.T) {
	rounded := sheet{"AHP", [][]any{
		{"Kriteria", "", "", "", "", "", "Bobot"},
		{"Kualitas Suara", "", "", "", "", "", 0.4012},
		{"Daya Tahan", "", "", "", "", "", 0.2498},
		{"Kemudahan Dimainkan", "", "", "", "", "", 0.2003},
		{"Popularitas", "", "", "", "", "", 0.0999},
		{"Harga", "", "", "", "", "", 0.0501},
	}}
	s, err := LoadWorkbook(createWorkbook(t, appDataset, rounded), DefaultSheets())
	require.NoError(t, err)

	sum := 0.0
	for _, w := range s.Weights {
		sum += w
	}
	assert.InDelta(t, 1, sum, 1e-9)
	assert.Greater(t, s.Weights[0], s.Weights[1])
}

func TestLoadWorkbook_AppLayoutPolarityColumn(t *testing.T) {
	data := sheet{"Dataset", [][]any{
		{"Kode", "Kriteria", "Jenis", "", "Alternatif", "C1", "C2"},
		{"C1", "Harga", "cost", "", "Kendang", 2, 5},
		{"C2", "Kualitas Suara", "", "", "Suling", 4, 3},
	}}
	ahpSheet := sheet{"AHP", [][]any{
		{"Kriteria", "", "", "", "", "", "Bobot"},
		{"Harga", "", "", "", "", "", 0.5},
		{"Kualitas Suara", "", "", "", "", "", 0.5},
	}}
	s, err := LoadWorkbook(createWorkbook(t, data, ahpSheet), DefaultSheets())
	require.NoError(t, err)
	require.Len(t, s.Criteria, 2)
	assert.Equal(t, criteria.Cost, s.Criteria[0].Polarity)
	assert.Equal(t, criteria.Benefit, s.Criteria[1].Polarity)
}

func TestLoadWorkbook_AppLayoutErrors(t *testing.T) {
	_, err := LoadWorkbook(createWorkbook(t, appDataset), DefaultSheets())
	assert.ErrorContains(t, err, `sheet "AHP" not found`)

	short := sheet{"AHP", [][]any{
		{"Kriteria", "", "", "", "", "", "Bobot"},
		{"Kualitas Suara", "", "", "", "", "", 0.4},
	}}
	_, err = LoadWorkbook(createWorkbook(t, appDataset, short), DefaultSheets())
	assert.ErrorContains(t, err, "weight rows")

	badScore := sheet{"Dataset", [][]any{
		{"Kode", "Kriteria", "", "", "Alternatif", "C1"},
		{"C1", "Kualitas Suara", "", "", "Kendang", "loud"},
	}}
	oneWeight := sheet{"AHP", [][]any{{"Kriteria", "", "", "", "", "", "Bobot"}, {"Kualitas Suara", "", "", "", "", "", 1}}}
	_, err = LoadWorkbook(createWorkbook(t, badScore, oneWeight), DefaultSheets())
	assert.ErrorContains(t, err, "Kendang")
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "a.yaml")
	require.NoError(t, os.WriteFile(yml, []byte(instrumentsYAML), 0o644))

	list, err := LoadFiles([]string{yml}, DefaultSheets())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, yml, list[0].Source)

	_, err = LoadFiles([]string{filepath.Join(dir, "a.csv")}, DefaultSheets())
	assert.Error(t, err)
}
