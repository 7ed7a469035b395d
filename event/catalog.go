package event

// Catalog is the root container of the hierarchy: an ordered collection of
// events plus catalog-level provenance.
type Catalog struct {
	ResourceID   *ResourceIdentifier
	Description  *string
	Events       []*Event
	Comments     []*Comment
	CreationInfo *CreationInfo
}

// ApplyDefaults assigns a generated resource identifier when none was given.
func (c *Catalog) ApplyDefaults() {
	if c.ResourceID == nil {
		c.ResourceID = NewResourceIdentifier("")
	}
}

// Len returns the number of events.
func (c *Catalog) Len() int { return len(c.Events) }
