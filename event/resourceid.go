package event

import "github.com/google/uuid"

// ResourceIdentifier uniquely identifies a catalog record. The string form is
// a seismological URI such as "smi:local/7a4e...". An empty id is replaced by
// a generated one so that identifiers stay unique without coordination.
type ResourceIdentifier struct {
	ID string
}

// NewResourceIdentifier returns an identifier wrapping id, generating an
// "smi:local/<uuid>" id when the argument is empty.
func NewResourceIdentifier(id string) *ResourceIdentifier {
	if id == "" {
		id = "smi:local/" + uuid.NewString()
	}
	return &ResourceIdentifier{ID: id}
}

func (r ResourceIdentifier) String() string { return r.ID }
