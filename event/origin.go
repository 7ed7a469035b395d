package event

// Origin is a hypocenter solution: where and when an event happened.
type Origin struct {
	ResourceID       *ResourceIdentifier
	Time             *Time
	TimeErrors       *QuantityError
	Longitude        *float64
	LongitudeErrors  *QuantityError
	Latitude         *float64
	LatitudeErrors   *QuantityError
	Depth            *float64
	DepthErrors      *QuantityError
	DepthType        OriginDepthType
	MethodID         *ResourceIdentifier
	EarthModelID     *ResourceIdentifier
	Quality          *OriginQuality
	Region           *string
	EvaluationMode   EvaluationMode
	EvaluationStatus EvaluationStatus
	Arrivals         []*Arrival
	Comments         []*Comment
	CreationInfo     *CreationInfo
}

func (o *Origin) Validate() error {
	return checkEnums(
		enumCheck{"depth_type", o.DepthType.IsValid()},
		enumCheck{"evaluation_mode", o.EvaluationMode.IsValid()},
		enumCheck{"evaluation_status", o.EvaluationStatus.IsValid()},
	)
}

// OriginQuality summarizes the station/phase coverage behind an origin.
type OriginQuality struct {
	AssociatedPhaseCount   *int
	UsedPhaseCount         *int
	AssociatedStationCount *int
	UsedStationCount       *int
	StandardError          *float64
	AzimuthalGap           *float64
	MinimumDistance        *float64
	MaximumDistance        *float64
	MedianDistance         *float64
}

// Arrival associates a pick with an origin and records its residuals.
type Arrival struct {
	ResourceID   *ResourceIdentifier
	PickID       *ResourceIdentifier
	Phase        *string
	Azimuth      *float64
	Distance     *float64
	TakeoffAngle *float64
	TimeResidual *float64
	TimeWeight   *float64
	Comments     []*Comment
	CreationInfo *CreationInfo
}
