// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: Object ⇄ Record conversion and YAML framing (Save/Load/Marshal/Unmarshal).

package persist

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Encode converts obj and its children into a Record tree. Encoding only reads
// obj, so concurrent Encode calls on the same tree are safe as long as nothing
// mutates it.
func Encode(obj Object) (*Record, error) {
	if obj == nil {
		return nil, ErrNilObject
	}
	if err := standalone(obj); err != nil {
		return nil, err
	}

	return encode(obj)
}

func encode(obj Object) (*Record, error) {
	w := newWriter()
	if err := obj.Serialize(w); err != nil {
		return nil, fmt.Errorf("persist: write %s: %w", obj.TypeName(), err)
	}
	rec := &Record{Type: obj.TypeName()}
	if len(w.fields) > 0 {
		rec.Fields = w.fields
	}

	p, ok := obj.(Parent)
	if !ok {
		return rec, nil
	}
	for _, group := range p.ChildGroups() {
		children := p.Children(group)
		if len(children) == 0 {
			continue
		}
		recs := make([]*Record, 0, len(children))
		for _, child := range children {
			if child == nil {
				return nil, fmt.Errorf("%w: %s.%s", ErrNilObject, obj.TypeName(), group)
			}
			cr, err := encode(child)
			if err != nil {
				return nil, err
			}
			recs = append(recs, cr)
		}
		if rec.Children == nil {
			rec.Children = make(map[string][]*Record)
		}
		rec.Children[group] = recs
	}

	return rec, nil
}

// Decode rebuilds an object tree from rec using the factories in reg.
//
// Order per object: factory → Serialize (fields) → children, group by group in
// ChildGroups order, each child fully decoded first → Adopt → PostLoad.
//
// A Dependent record at the top level fails with ErrNeedsParent.
func Decode(reg *Registry, rec *Record) (Object, error) {
	if rec == nil || reg == nil {
		return nil, ErrNilObject
	}

	return decode(reg, rec, true)
}

func decode(reg *Registry, rec *Record, top bool) (Object, error) {
	if rec == nil {
		return nil, ErrNilObject
	}

	obj, err := reg.New(rec.Type)
	if err != nil {
		return nil, err
	}

	if top {
		if err = standalone(obj); err != nil {
			return nil, err
		}
	}

	rd := newReader(rec.Type, rec.Fields)
	if err = obj.Serialize(rd); err != nil {
		return nil, fmt.Errorf("persist: read %s: %w", rec.Type, err)
	}
	if err = rd.Err(); err != nil {
		return nil, err
	}

	if len(rec.Children) > 0 {
		p, ok := obj.(Parent)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotParent, rec.Type)
		}
		if err = decodeChildren(reg, p, rec); err != nil {
			return nil, err
		}
	}

	if f, ok := obj.(Fixer); ok {
		if err = f.PostLoad(); err != nil {
			return nil, fmt.Errorf("persist: post-load %s: %w", rec.Type, err)
		}
	}

	return obj, nil
}

func decodeChildren(reg *Registry, p Parent, rec *Record) error {
	known := make(map[string]bool, len(rec.Children))
	for _, group := range p.ChildGroups() {
		known[group] = true
		recs, ok := rec.Children[group]
		if !ok {
			continue
		}
		children := make([]Object, 0, len(recs))
		for _, cr := range recs {
			child, err := decode(reg, cr, false)
			if err != nil {
				return err
			}
			children = append(children, child)
		}
		if err := p.Adopt(group, children); err != nil {
			return fmt.Errorf("persist: adopt %s.%s: %w", rec.Type, group, err)
		}
	}
	for group := range rec.Children {
		if !known[group] {
			return fmt.Errorf("%w: %s has no group %q", ErrNotParent, rec.Type, group)
		}
	}

	return nil
}

// standalone rejects Dependent objects outside a parent.
func standalone(obj Object) error {
	if d, ok := obj.(Dependent); ok && d.NeedsParent() {
		return fmt.Errorf("%w: %s", ErrNeedsParent, obj.TypeName())
	}

	return nil
}

// Save writes obj to w as a YAML document.
func Save(w io.Writer, obj Object) error {
	rec, err := Encode(obj)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(rec); err != nil {
		return fmt.Errorf("persist: encode yaml: %w", err)
	}

	return enc.Close()
}

// Load reads one YAML document from r and decodes it.
func Load(r io.Reader, reg *Registry) (Object, error) {
	var rec Record
	if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("persist: decode yaml: %w", err)
	}

	return Decode(reg, &rec)
}

// LoadAs is Load followed by a type check.
func LoadAs[T Object](r io.Reader, reg *Registry) (T, error) {
	var zero T
	obj, err := Load(r, reg)
	if err != nil {
		return zero, err
	}
	out, ok := obj.(T)
	if !ok {
		return zero, fmt.Errorf("%w: got %s, want %T", ErrUnknownType, obj.TypeName(), zero)
	}

	return out, nil
}

// Marshal returns obj as YAML bytes.
func Marshal(obj Object) ([]byte, error) {
	var buf bytes.Buffer
	if err := Save(&buf, obj); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes YAML bytes produced by Marshal.
func Unmarshal(reg *Registry, data []byte) (Object, error) {
	return Load(bytes.NewReader(data), reg)
}
