package scenario

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// LoadFile picks the loader by extension: .yaml/.yml or .xlsx.
func LoadFile(path string, sheets Sheets) (*Scenario, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".xlsx":
		return LoadWorkbook(path, sheets)
	default:
		return nil, eris.Errorf("scenario: unsupported file type %q", path)
	}
}

// LoadFiles loads every path in order, stopping at the first failure.
func LoadFiles(paths []string, sheets Sheets) ([]*Scenario, error) {
	out := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadFile(p, sheets)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
