package event

// Event groups every record describing one seismic event: phase picks,
// amplitudes, origin solutions and magnitude estimates, plus classification
// and provenance.
type Event struct {
	ResourceID           *ResourceIdentifier
	EventType            EventType
	EventTypeCertainty   EventTypeCertainty
	PreferredOriginID    *ResourceIdentifier
	PreferredMagnitudeID *ResourceIdentifier
	CreationInfo         *CreationInfo
	Picks                []*Pick
	Amplitudes           []*Amplitude
	Origins              []*Origin
	Magnitudes           []*Magnitude
	StationMagnitudes    []*StationMagnitude
	Comments             []*Comment
	EventDescriptions    []*EventDescription
}

// ApplyDefaults assigns a generated resource identifier when none was given.
// Events must always be addressable.
func (e *Event) ApplyDefaults() {
	if e.ResourceID == nil {
		e.ResourceID = NewResourceIdentifier("")
	}
}

func (e *Event) Validate() error {
	return checkEnums(
		enumCheck{"event_type", e.EventType.IsValid()},
		enumCheck{"event_type_certainty", e.EventTypeCertainty.IsValid()},
	)
}

// PreferredOrigin returns the origin referenced by PreferredOriginID, or the
// first origin when no preference is recorded, or nil.
func (e *Event) PreferredOrigin() *Origin {
	if e.PreferredOriginID != nil {
		for _, o := range e.Origins {
			if o.ResourceID != nil && o.ResourceID.ID == e.PreferredOriginID.ID {
				return o
			}
		}
	}
	if len(e.Origins) > 0 {
		return e.Origins[0]
	}
	return nil
}

// PreferredMagnitude returns the magnitude referenced by
// PreferredMagnitudeID, or the first magnitude, or nil.
func (e *Event) PreferredMagnitude() *Magnitude {
	if e.PreferredMagnitudeID != nil {
		for _, m := range e.Magnitudes {
			if m.ResourceID != nil && m.ResourceID.ID == e.PreferredMagnitudeID.ID {
				return m
			}
		}
	}
	if len(e.Magnitudes) > 0 {
		return e.Magnitudes[0]
	}
	return nil
}
