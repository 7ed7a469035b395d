package codec

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/reoring/catmap"
	"github.com/reoring/catmap/event"
)

// MarshalYAML renders a catalog as YAML.
func MarshalYAML(c *event.Catalog) ([]byte, error) {
	return yaml.Marshal(catmap.ToGeneric(c))
}

// UnmarshalYAML reconstructs a catalog from YAML. Like UnmarshalJSON it owns
// the decoded mapping and converts destructively.
func UnmarshalYAML(data []byte) (*event.Catalog, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return catmap.ToCatalog(m, catmap.ConvertOpt{Destructive: true})
}

// DecodeYAML reconstructs a catalog from a YAML stream.
func DecodeYAML(r io.Reader) (*event.Catalog, error) {
	var m map[string]any
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}
	return catmap.ToCatalog(m, catmap.ConvertOpt{Destructive: true})
}

// EncodeYAML writes a catalog to a YAML stream.
func EncodeYAML(w io.Writer, c *event.Catalog) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(catmap.ToGeneric(c))
}
