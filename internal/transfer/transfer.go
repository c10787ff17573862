// Package transfer moves the whole collection in and out as JSON.
package transfer

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/Devesh-1988-Wan/z10triage/internal/model"
)

// DefaultExportName is the file offered when the caller names none.
const DefaultExportName = "z10triage-export.json"

// ErrNotArray rejects import payloads whose top-level value is not a
// JSON array. Nothing is persisted when this is returned.
var ErrNotArray = errors.New("import: payload is not a JSON array")

// Export writes the collection as a pretty-printed JSON array.
func Export(items []model.TriageItem, w io.Writer) error {
	if items == nil {
		items = []model.TriageItem{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Wrap(err, "export: marshal")
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return errors.Wrap(err, "export: write")
}

// Import parses a JSON array of items, synthesizing a fresh id for every
// record that arrived without one. The shape check happens before any id
// is handed out, so a malformed payload has no side effects at all.
func Import(r io.Reader) ([]model.TriageItem, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "import: read")
	}

	var probe interface{}
	if err := json.Unmarshal(b, &probe); err != nil {
		return nil, errors.Wrap(err, "import: parse")
	}
	if _, ok := probe.([]interface{}); !ok {
		return nil, ErrNotArray
	}

	var items []model.TriageItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, errors.Wrap(err, "import: decode items")
	}
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = model.NewID()
		}
	}
	return items, nil
}
