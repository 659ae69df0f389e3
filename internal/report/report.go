// Package report renders weights and rankings as aligned text tables, JSON
// or CSV. Numbers in tables follow the configured locale.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/yankputra/SPK-AlatMusikKesenian/criteria"
	"github.com/yankputra/SPK-AlatMusikKesenian/internal/scenario"
)

// Format is an output format.
type Format string

// Formats.
const (
	Table Format = "table"
	JSON  Format = "json"
	CSV   Format = "csv"
)

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Table, JSON, CSV:
		return f, nil
	case "":
		return Table, nil
	}
	return "", eris.Errorf("report: unknown format %q", s)
}

// Renderer writes reports in one format and locale.
type Renderer struct {
	format    Format
	printer   *message.Printer
	localized bool // Indonesian verdict labels
}

// New returns a Renderer for format and a BCP 47 locale tag ("en", "id").
func New(format Format, locale string) (*Renderer, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	if format == "" {
		format = Table
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, eris.Wrapf(err, "report: locale %q", locale)
	}
	base, _ := tag.Base()
	return &Renderer{
		format:    format,
		printer:   message.NewPrinter(tag),
		localized: base.String() == "id",
	}, nil
}

// Weights writes the criteria weights and, when present, the consistency report.
func (r *Renderer) Weights(w io.Writer, crit []criteria.Criterion, ws *scenario.Weights) error {
	switch r.format {
	case JSON:
		return writeJSON(w, struct {
			Criteria []criteria.Criterion `json:"criteria"`
			*scenario.Weights
		}{crit, ws})
	case CSV:
		rows := [][]string{{"code", "label", "polarity", "weight", "percent"}}
		for i, c := range crit {
			v := ws.Vector.At(i)
			rows = append(rows, []string{c.Code, c.Label, c.Polarity.String(), decimal(v, 6), decimal(v*100, 2)})
		}
		return writeCSV(w, rows)
	}

	t := newTable("Code", "Criterion", "Polarity", "Weight", "Weight %")
	for i, c := range crit {
		v := ws.Vector.At(i)
		t.add(c.Code, c.Label, r.polarity(c.Polarity), r.printer.Sprintf("%.4f", v), r.printer.Sprintf("%.2f%%", v*100))
	}
	if err := t.write(w); err != nil {
		return err
	}
	if c := ws.Consistency; c != nil {
		verdict := "acceptable"
		if !c.Acceptable {
			verdict = "NOT acceptable, revisit the pairwise judgments"
		}
		_, err := r.printer.Fprintf(w, "\nλmax %.4f  CI %.4f  RI %.2f  CR %.4f  (%s)\n",
			c.LambdaMax, c.CI, c.RI, c.CR, verdict)
		return err
	}
	return nil
}

// Ranking writes the TOPSIS ranking of out.
func (r *Renderer) Ranking(w io.Writer, out *scenario.Outcome) error {
	switch r.format {
	case JSON:
		return writeJSON(w, out)
	case CSV:
		rows := [][]string{{"rank", "alternative", "d_plus", "d_minus", "closeness", "verdict"}}
		for _, row := range out.Ranking.Rows {
			rows = append(rows, []string{
				strconv.Itoa(row.Rank), row.Alternative,
				decimal(row.DPlus, 6), decimal(row.DMinus, 6), decimal(row.Closeness, 6),
				row.Verdict.String(),
			})
		}
		return writeCSV(w, rows)
	}

	if _, err := fmt.Fprintf(w, "%s  (run %s, %s normalization)\n\n", out.Scenario, out.RunID, out.Normalization); err != nil {
		return err
	}
	t := newTable("Rank", "Alternative", "D+", "D-", "Closeness", "Verdict")
	for _, row := range out.Ranking.Rows {
		verdict := row.Verdict.String()
		if r.localized {
			verdict = row.Verdict.Localized()
		}
		t.add(
			strconv.Itoa(row.Rank), row.Alternative,
			r.printer.Sprintf("%.4f", row.DPlus), r.printer.Sprintf("%.4f", row.DMinus),
			r.printer.Sprintf("%.4f", row.Closeness), verdict,
		)
	}
	return t.write(w)
}

// Evaluation writes weights followed by the ranking.
func (r *Renderer) Evaluation(w io.Writer, out *scenario.Outcome) error {
	if r.format != Table {
		return r.Ranking(w, out)
	}
	if err := r.Weights(w, out.Criteria, &out.Weights); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return r.Ranking(w, out)
}

// Batch writes every item of a batch; failures are reported inline.
func (r *Renderer) Batch(w io.Writer, items []scenario.BatchItem) error {
	switch r.format {
	case JSON:
		type item struct {
			Scenario string            `json:"scenario"`
			Outcome  *scenario.Outcome `json:"outcome,omitempty"`
			Error    string            `json:"error,omitempty"`
		}
		list := make([]item, len(items))
		for i, it := range items {
			list[i] = item{Scenario: it.Scenario, Outcome: it.Outcome}
			if it.Err != nil {
				list[i].Error = it.Err.Error()
			}
		}
		return writeJSON(w, list)
	case CSV:
		rows := [][]string{{"scenario", "rank", "alternative", "closeness", "verdict", "error"}}
		for _, it := range items {
			if it.Err != nil {
				rows = append(rows, []string{it.Scenario, "", "", "", "", it.Err.Error()})
				continue
			}
			for _, row := range it.Outcome.Ranking.Rows {
				rows = append(rows, []string{it.Scenario, strconv.Itoa(row.Rank), row.Alternative, decimal(row.Closeness, 6), row.Verdict.String(), ""})
			}
		}
		return writeCSV(w, rows)
	}

	for i, it := range items {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if it.Err != nil {
			if _, err := fmt.Fprintf(w, "%s: FAILED: %v\n", it.Scenario, it.Err); err != nil {
				return err
			}
			continue
		}
		if err := r.Ranking(w, it.Outcome); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) polarity(p criteria.Polarity) string {
	if !r.localized {
		return p.String()
	}
	if p == criteria.Cost {
		return "Biaya"
	}
	return "Keuntungan"
}

func decimal(v float64, prec int) string { return strconv.FormatFloat(v, 'f', prec, 64) }

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return eris.Wrap(err, "report: encode json")
	}
	return nil
}

func writeCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return eris.Wrap(err, "report: write csv")
	}
	return nil
}
