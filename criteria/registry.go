package criteria

import "fmt"

// Registry is an ordered set of criteria keyed by code.
// The zero value is an empty, usable registry. A Registry is not safe for
// concurrent mutation; once populated it is read-only and may be shared.
type Registry struct {
	items []Criterion
	index map[string]int
}

// NewRegistry registers cs in order.
func NewRegistry(cs ...Criterion) (*Registry, error) {
	r := &Registry{}
	for _, c := range cs {
		if err := r.Add(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add appends c. Fails on an invalid criterion or a duplicate code.
func (r *Registry) Add(c Criterion) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if _, dup := r.index[c.Code]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateCode, c.Code)
	}
	r.index[c.Code] = len(r.items)
	r.items = append(r.items, c)
	return nil
}

// Len returns the number of registered criteria.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.items)
}

// At returns the criterion at column position i.
func (r *Registry) At(i int) (Criterion, error) {
	if i < 0 || i >= r.Len() {
		return Criterion{}, fmt.Errorf("%w: position %d", ErrUnknownCode, i)
	}
	return r.items[i], nil
}

// Lookup returns the criterion registered under code.
func (r *Registry) Lookup(code string) (Criterion, error) {
	i, err := r.IndexOf(code)
	if err != nil {
		return Criterion{}, err
	}
	return r.items[i], nil
}

// IndexOf returns the column position of code.
func (r *Registry) IndexOf(code string) (int, error) {
	if r != nil {
		if i, ok := r.index[code]; ok {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCode, code)
}

// All returns a copy of the criteria in registration order.
func (r *Registry) All() []Criterion {
	if r == nil {
		return nil
	}
	return append([]Criterion(nil), r.items...)
}

// Codes returns the criterion codes in registration order.
func (r *Registry) Codes() []string {
	out := make([]string, r.Len())
	for i := range out {
		out[i] = r.items[i].Code
	}
	return out
}

// Polarities returns the polarity of each column in registration order.
func (r *Registry) Polarities() []Polarity {
	out := make([]Polarity, r.Len())
	for i := range out {
		out[i] = r.items[i].Polarity
	}
	return out
}
