package event

// Amplitude is a measured waveform amplitude used for magnitude estimation.
type Amplitude struct {
	ResourceID             *ResourceIdentifier
	GenericAmplitude       *float64
	GenericAmplitudeErrors *QuantityError
	Type                   *string
	Unit                   AmplitudeUnit
	Period                 *float64
	SNR                    *float64
	TimeWindow             *TimeWindow
	PickID                 *ResourceIdentifier
	WaveformID             *WaveformStreamID
	MagnitudeHint          *string
	EvaluationMode         EvaluationMode
	CreationInfo           *CreationInfo
	Comments               []*Comment
}

func (a *Amplitude) Validate() error {
	return checkEnums(
		enumCheck{"unit", a.Unit.IsValid()},
		enumCheck{"evaluation_mode", a.EvaluationMode.IsValid()},
	)
}
