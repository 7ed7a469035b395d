package event

// Enumerations are named string types. The empty string always means "unset"
// and is accepted by IsValid; records reject anything else that is not one of
// the declared values. The converter never pre-constructs enum values, record
// validation owns them.

// EvaluationMode describes how a record was produced.
type EvaluationMode string

const (
	EvaluationModeManual    EvaluationMode = "manual"
	EvaluationModeAutomatic EvaluationMode = "automatic"
)

func (m EvaluationMode) IsValid() bool {
	switch m {
	case "", EvaluationModeManual, EvaluationModeAutomatic:
		return true
	}
	return false
}

// EvaluationStatus describes the review state of a record.
type EvaluationStatus string

const (
	EvaluationStatusPreliminary EvaluationStatus = "preliminary"
	EvaluationStatusConfirmed   EvaluationStatus = "confirmed"
	EvaluationStatusReviewed    EvaluationStatus = "reviewed"
	EvaluationStatusFinal       EvaluationStatus = "final"
	EvaluationStatusRejected    EvaluationStatus = "rejected"
)

func (s EvaluationStatus) IsValid() bool {
	switch s {
	case "", EvaluationStatusPreliminary, EvaluationStatusConfirmed,
		EvaluationStatusReviewed, EvaluationStatusFinal, EvaluationStatusRejected:
		return true
	}
	return false
}

// PickOnset describes how sharply a phase arrival begins.
type PickOnset string

const (
	PickOnsetEmergent     PickOnset = "emergent"
	PickOnsetImpulsive    PickOnset = "impulsive"
	PickOnsetQuestionable PickOnset = "questionable"
)

func (o PickOnset) IsValid() bool {
	switch o {
	case "", PickOnsetEmergent, PickOnsetImpulsive, PickOnsetQuestionable:
		return true
	}
	return false
}

// PickPolarity is the first-motion polarity of a pick.
type PickPolarity string

const (
	PickPolarityPositive    PickPolarity = "positive"
	PickPolarityNegative    PickPolarity = "negative"
	PickPolarityUndecidable PickPolarity = "undecidable"
)

func (p PickPolarity) IsValid() bool {
	switch p {
	case "", PickPolarityPositive, PickPolarityNegative, PickPolarityUndecidable:
		return true
	}
	return false
}

// OriginDepthType qualifies how an origin depth was determined.
type OriginDepthType string

const (
	DepthFromLocation        OriginDepthType = "from location"
	DepthFromMomentTensor    OriginDepthType = "from moment tensor inversion"
	DepthBroadbandModelling  OriginDepthType = "from modeling of broad-band P waveforms"
	DepthConstrainedByDepth  OriginDepthType = "constrained by depth phases"
	DepthConstrainedByDirect OriginDepthType = "constrained by direct phases"
	DepthOperatorAssigned    OriginDepthType = "operator assigned"
	DepthOther               OriginDepthType = "other"
)

func (d OriginDepthType) IsValid() bool {
	switch d {
	case "", DepthFromLocation, DepthFromMomentTensor, DepthBroadbandModelling,
		DepthConstrainedByDepth, DepthConstrainedByDirect, DepthOperatorAssigned,
		DepthOther:
		return true
	}
	return false
}

// AmplitudeUnit is the physical unit of a measured amplitude.
type AmplitudeUnit string

const (
	UnitMeters        AmplitudeUnit = "m"
	UnitSeconds       AmplitudeUnit = "s"
	UnitMetersPerS    AmplitudeUnit = "m/s"
	UnitMetersPerSS   AmplitudeUnit = "m/(s*s)"
	UnitMeterSeconds  AmplitudeUnit = "m*s"
	UnitDimensionless AmplitudeUnit = "dimensionless"
	UnitOther         AmplitudeUnit = "other"
)

func (u AmplitudeUnit) IsValid() bool {
	switch u {
	case "", UnitMeters, UnitSeconds, UnitMetersPerS, UnitMetersPerSS,
		UnitMeterSeconds, UnitDimensionless, UnitOther:
		return true
	}
	return false
}

// EventType classifies the physical process behind an event.
type EventType string

const (
	EventTypeEarthquake        EventType = "earthquake"
	EventTypeExplosion         EventType = "explosion"
	EventTypeQuarryBlast       EventType = "quarry blast"
	EventTypeInducedEarthquake EventType = "induced or triggered event"
	EventTypeLandslide         EventType = "landslide"
	EventTypeNotExisting       EventType = "not existing"
	EventTypeOther             EventType = "other event"
)

func (e EventType) IsValid() bool {
	switch e {
	case "", EventTypeEarthquake, EventTypeExplosion, EventTypeQuarryBlast,
		EventTypeInducedEarthquake, EventTypeLandslide, EventTypeNotExisting,
		EventTypeOther:
		return true
	}
	return false
}

// EventTypeCertainty states how certain the event type classification is.
type EventTypeCertainty string

const (
	CertaintyKnown     EventTypeCertainty = "known"
	CertaintySuspected EventTypeCertainty = "suspected"
)

func (c EventTypeCertainty) IsValid() bool {
	switch c {
	case "", CertaintyKnown, CertaintySuspected:
		return true
	}
	return false
}

// EventDescriptionType classifies free-text event descriptions.
type EventDescriptionType string

const (
	DescriptionFeltReport      EventDescriptionType = "felt report"
	DescriptionFlinnEngdahl    EventDescriptionType = "Flinn-Engdahl region"
	DescriptionLocalEffects    EventDescriptionType = "local effects"
	DescriptionTectonicSummary EventDescriptionType = "tectonic summary"
	DescriptionNearestCities   EventDescriptionType = "nearest cities"
	DescriptionEarthquakeName  EventDescriptionType = "earthquake name"
	DescriptionRegionName      EventDescriptionType = "region name"
)

func (d EventDescriptionType) IsValid() bool {
	switch d {
	case "", DescriptionFeltReport, DescriptionFlinnEngdahl, DescriptionLocalEffects,
		DescriptionTectonicSummary, DescriptionNearestCities,
		DescriptionEarthquakeName, DescriptionRegionName:
		return true
	}
	return false
}
