// Package timeline converts goal trees to and from the nested JSON document
// stored in .tiwut_timeline files.
package timeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/alexanderramin/lifemap/internal/domain"
)

// Record is the persisted shape of one goal. Field order matches the file
// format.
type Record struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Date        string   `json:"date"`
	Progress    int      `json:"progress"`
	Children    []Record `json:"children"`
}

// Serialize converts g and its subtree to a Record. Layout data and IDs are
// not included.
func Serialize(g *domain.Goal) Record {
	rec := Record{
		Name:        g.Name,
		Description: g.Description,
		URL:         g.URL,
		Date:        g.Date,
		Progress:    g.Progress(),
		Children:    make([]Record, 0, g.ChildCount()),
	}
	for _, c := range g.Children() {
		rec.Children = append(rec.Children, Serialize(c))
	}
	return rec
}

// Deserialize builds a fresh goal hierarchy from rec. Parent links are
// rebuilt from nesting and progress is clamped.
func Deserialize(rec Record) *domain.Goal {
	g := domain.NewGoal(rec.Name)
	g.Description = rec.Description
	g.URL = rec.URL
	g.Date = rec.Date
	g.SetProgress(rec.Progress)
	for _, cr := range rec.Children {
		// A freshly built child can never contain g.
		_ = g.AppendChild(Deserialize(cr))
	}
	return g
}

// Encode renders tree as indented UTF-8 JSON with a trailing newline.
func Encode(tree *domain.Tree) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(Serialize(tree.Root())); err != nil {
		return nil, fmt.Errorf("encoding timeline: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a timeline document. Malformed JSON and records without a
// name yield a *domain.ValidationError; missing optional fields default to
// empty values. Keys are matched exactly, so "Name" is not "name".
func Decode(data []byte) (*domain.Tree, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &domain.ValidationError{Reason: "malformed JSON: " + err.Error()}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &domain.ValidationError{Reason: "malformed JSON: trailing data"}
	}
	rec, err := decodeRecord(doc, "")
	if err != nil {
		return nil, err
	}
	return domain.NewTreeFromRoot(Deserialize(rec)), nil
}

// DecodeReader is Decode over an io.Reader.
func DecodeReader(r io.Reader) (*domain.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading timeline: %w", err)
	}
	return Decode(data)
}

// decodeRecord reads one record from an already parsed document.
func decodeRecord(v any, path string) (Record, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return Record{}, &domain.ValidationError{Path: path, Reason: "expected an object"}
	}

	name, ok := obj["name"]
	if !ok || name == nil {
		return Record{}, &domain.ValidationError{Path: join(path, "name"), Reason: "required"}
	}
	var rec Record
	var err error
	if rec.Name, err = stringField(name, join(path, "name")); err != nil {
		return Record{}, err
	}
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"description", &rec.Description},
		{"url", &rec.URL},
		{"date", &rec.Date},
	} {
		if *f.dst, err = stringField(obj[f.key], join(path, f.key)); err != nil {
			return Record{}, err
		}
	}
	if rec.Progress, err = parseProgress(obj["progress"]); err != nil {
		return Record{}, &domain.ValidationError{Path: join(path, "progress"), Reason: err.Error()}
	}

	var kids []any
	switch c := obj["children"].(type) {
	case nil:
	case []any:
		kids = c
	default:
		return Record{}, &domain.ValidationError{Path: join(path, "children"), Reason: "expected an array"}
	}
	rec.Children = make([]Record, 0, len(kids))
	for i, raw := range kids {
		child, err := decodeRecord(raw, fmt.Sprintf("%s[%d]", join(path, "children"), i))
		if err != nil {
			return Record{}, err
		}
		rec.Children = append(rec.Children, child)
	}
	return rec, nil
}

// stringField accepts a string or an absent/null value.
func stringField(v any, path string) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	default:
		return "", &domain.ValidationError{Path: path, Reason: fmt.Sprintf("expected a string, got %T", v)}
	}
}

// parseProgress accepts JSON numbers (rounding fractions) and null; the
// caller clamps the range.
func parseProgress(v any) (int, error) {
	if v == nil {
		return 0, nil
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
	if i, err := n.Int64(); err == nil {
		return int(max(math.MinInt32, min(math.MaxInt32, i))), nil
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) {
		return 0, fmt.Errorf("not a number: %q", n.String())
	}
	return int(math.Max(math.MinInt32, math.Min(math.MaxInt32, math.Round(f)))), nil
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	if field == "" {
		return path
	}
	return path + "." + field
}
