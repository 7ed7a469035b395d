// Package codec bridges catalogs and interchange encodings. JSON goes through
// goccy/go-json, YAML through gopkg.in/yaml.v3; both encode the generic
// structure produced by the root package, never the records directly.
package codec

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/reoring/catmap"
	"github.com/reoring/catmap/event"
)

// MarshalJSON renders a catalog as JSON.
func MarshalJSON(c *event.Catalog) ([]byte, error) {
	return json.Marshal(catmap.ToGeneric(c))
}

// MarshalJSONIndent renders a catalog as indented JSON.
func MarshalJSONIndent(c *event.Catalog) ([]byte, error) {
	return json.MarshalIndent(catmap.ToGeneric(c), "", "  ")
}

// UnmarshalJSON reconstructs a catalog from JSON. The decoded mapping is
// owned by this function, so reverse conversion runs destructively.
func UnmarshalJSON(data []byte) (*event.Catalog, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return catmap.ToCatalog(m, catmap.ConvertOpt{Destructive: true})
}

// DecodeJSON reconstructs a catalog from a JSON stream.
func DecodeJSON(r io.Reader) (*event.Catalog, error) {
	var m map[string]any
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}
	return catmap.ToCatalog(m, catmap.ConvertOpt{Destructive: true})
}

// EncodeJSON writes a catalog to a JSON stream.
func EncodeJSON(w io.Writer, c *event.Catalog) error {
	return json.NewEncoder(w).Encode(catmap.ToGeneric(c))
}
