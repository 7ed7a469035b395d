package event

// Magnitude is a network magnitude estimate derived from an origin.
type Magnitude struct {
	ResourceID       *ResourceIdentifier
	Mag              *float64
	MagErrors        *QuantityError
	MagnitudeType    *string
	OriginID         *ResourceIdentifier
	MethodID         *ResourceIdentifier
	StationCount     *int
	AzimuthalGap     *float64
	EvaluationMode   EvaluationMode
	EvaluationStatus EvaluationStatus
	Comments         []*Comment
	CreationInfo     *CreationInfo
}

func (m *Magnitude) Validate() error {
	return checkEnums(
		enumCheck{"evaluation_mode", m.EvaluationMode.IsValid()},
		enumCheck{"evaluation_status", m.EvaluationStatus.IsValid()},
	)
}

// StationMagnitude is a single-station magnitude contribution.
type StationMagnitude struct {
	ResourceID           *ResourceIdentifier
	OriginID             *ResourceIdentifier
	Mag                  *float64
	MagErrors            *QuantityError
	StationMagnitudeType *string
	AmplitudeID          *ResourceIdentifier
	WaveformID           *WaveformStreamID
	Comments             []*Comment
	CreationInfo         *CreationInfo
}
