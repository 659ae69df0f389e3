package scenario

import (
	"bytes"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// DecodeYAML reads one scenario document. Unknown keys are rejected.
func DecodeYAML(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return nil, eris.New("scenario: empty document")
		}
		return nil, eris.Wrap(err, "scenario: decode yaml")
	}
	return &s, nil
}

// LoadYAML reads a scenario file.
func LoadYAML(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "scenario: read file")
	}
	s, err := DecodeYAML(bytes.NewReader(data))
	if err != nil {
		return nil, eris.Wrapf(err, "scenario: %s", path)
	}
	s.Source = path
	return s, nil
}

// EncodeYAML writes s as a YAML document.
func EncodeYAML(w io.Writer, s *Scenario) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return eris.Wrap(err, "scenario: encode yaml")
	}
	return enc.Close()
}
