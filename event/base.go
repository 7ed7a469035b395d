package event

// CreationInfo records provenance for the record that carries it.
type CreationInfo struct {
	AgencyID     *string
	AgencyURI    *ResourceIdentifier
	Author       *string
	AuthorURI    *ResourceIdentifier
	CreationTime *Time
	Version      *string
}

// Comment is a free-text annotation attachable to any record.
type Comment struct {
	Text         *string
	ResourceID   *ResourceIdentifier
	CreationInfo *CreationInfo
}

// WaveformStreamID identifies the waveform stream a measurement was made on.
// The codes default to empty strings rather than nil; an unset code is an
// empty code.
type WaveformStreamID struct {
	NetworkCode  string
	StationCode  string
	LocationCode string
	ChannelCode  string
	ResourceURI  *ResourceIdentifier
}

// EventDescription is a typed free-text description of an event.
type EventDescription struct {
	Text *string
	Type EventDescriptionType
}

func (d *EventDescription) Validate() error {
	return checkEnums(enumCheck{"type", d.Type.IsValid()})
}

// TimeWindow describes a time interval around a reference instant.
type TimeWindow struct {
	Begin     *float64
	End       *float64
	Reference *Time
}
