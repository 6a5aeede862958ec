package catalog

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/fractal/ifs"
	"github.com/katalvlaran/fractal/matrix"
	"gopkg.in/yaml.v3"
)

// Document is the YAML layout accepted by LoadYAML.
type Document struct {
	Definitions []DocumentDefinition `yaml:"definitions"`
}

// DocumentDefinition is one named system.
type DocumentDefinition struct {
	Name    string        `yaml:"name"`
	Aliases []string      `yaml:"aliases,omitempty"`
	Maps    []DocumentMap `yaml:"maps"`
}

// DocumentMap is one affine map: A (rows), T and an optional weight P.
// Either every map of a definition carries P or none does; an unweighted
// definition only drives the deterministic generator.
type DocumentMap struct {
	A [][]float64 `yaml:"a"`
	T []float64   `yaml:"t"`
	P *float64    `yaml:"p,omitempty"`
}

// Definition converts the document entry into an ifs.Definition.
func (d DocumentDefinition) Definition() (*ifs.Definition, error) {
	as := make([]matrix.Matrix, len(d.Maps))
	ts := make([][]float64, len(d.Maps))
	var p []float64
	weighted := 0
	for i, m := range d.Maps {
		a, err := matrix.NewDenseFromRows(m.A)
		if err != nil {
			return nil, fmt.Errorf("map %d: %w", i, err)
		}
		as[i], ts[i] = a, m.T
		if m.P != nil {
			weighted++
		}
	}
	if weighted != 0 && weighted != len(d.Maps) {
		return nil, fmt.Errorf("%d of %d maps carry a weight: %w", weighted, len(d.Maps), ifs.ErrInvalidDefinition)
	}
	if weighted > 0 {
		p = make([]float64, len(d.Maps))
		for i, m := range d.Maps {
			p[i] = *m.P
		}
	}

	return ifs.NewDefinition(as, ts, p)
}

// LoadYAML decodes a Document from rd and registers every definition.
// Either all definitions are registered or none are. Returns the number
// registered.
//
// Errors:
//   - ErrMalformed       — undecodable YAML or an invalid definition
//     (the ifs/matrix sentinel stays matchable via errors.Is).
//   - ErrInvalidArgument — an empty name or alias.
//   - ErrDuplicate       — a name or alias clashes with an existing entry or
//     with another entry of the same document.
func (r *Registry) LoadYAML(rd io.Reader) (int, error) {
	var doc Document
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return 0, catalogErrorf(methodLoadYAML, err.Error(), ErrMalformed)
	}

	type pending struct {
		canonical string
		def       *ifs.Definition
		keys      []string
	}
	batch := make([]pending, 0, len(doc.Definitions))
	for i, dd := range doc.Definitions {
		canonical := Normalize(dd.Name)
		if canonical == "" {
			return 0, catalogErrorf(methodLoadYAML, fmt.Sprintf("definition %d: empty name", i), ErrInvalidArgument)
		}
		def, err := dd.Definition()
		if err != nil {
			return 0, fmt.Errorf("%s: %q: %w: %w", methodLoadYAML, canonical, ErrMalformed, err)
		}
		keys := []string{canonical}
		for _, a := range dd.Aliases {
			k := Normalize(a)
			if k == "" {
				return 0, catalogErrorf(methodLoadYAML, fmt.Sprintf("empty alias for %q", canonical), ErrInvalidArgument)
			}
			keys = append(keys, k)
		}
		batch = append(batch, pending{canonical: canonical, def: def, keys: keys})
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Dry run: a key may repeat within one entry but never across entries,
	// and never collide with the registry.
	claimed := make(map[string]int)
	for i, p := range batch {
		for _, k := range p.keys {
			if owner, taken := r.keys[k]; taken {
				return 0, catalogErrorf(methodLoadYAML, fmt.Sprintf("%q already maps to %q", k, owner), ErrDuplicate)
			}
			if j, taken := claimed[k]; taken && j != i {
				return 0, catalogErrorf(methodLoadYAML, fmt.Sprintf("%q claimed by %q and %q", k, batch[j].canonical, p.canonical), ErrDuplicate)
			}
			claimed[k] = i
		}
	}
	for _, p := range batch {
		if err := r.insertLocked(methodLoadYAML, p.canonical, p.def, p.keys); err != nil {
			return 0, err
		}
	}

	return len(batch), nil
}

// MarshalDefinition renders def as a DocumentDefinition under name.
// Weights are emitted when def has them.
func MarshalDefinition(name string, def *ifs.Definition, aliases ...string) ([]byte, error) {
	if def == nil {
		return nil, catalogErrorf(methodMarshal, "nil definition", ErrInvalidArgument)
	}
	dd := DocumentDefinition{Name: name, Aliases: aliases}
	w := def.Weights()
	for i, m := range def.Maps() {
		lin := m.Linear()
		a := make([][]float64, lin.Rows())
		for r := range a {
			a[r] = make([]float64, lin.Cols())
			for c := range a[r] {
				a[r][c], _ = lin.At(r, c)
			}
		}
		dm := DocumentMap{A: a, T: m.Translation()}
		if w != nil {
			v := w[i]
			dm.P = &v
		}
		dd.Maps = append(dd.Maps, dm)
	}

	return yaml.Marshal(Document{Definitions: []DocumentDefinition{dd}})
}
