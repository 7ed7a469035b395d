package event

// Pick is a phase arrival time measured on a waveform stream.
type Pick struct {
	ResourceID       *ResourceIdentifier
	Time             *Time
	TimeErrors       *QuantityError
	WaveformID       *WaveformStreamID
	MethodID         *ResourceIdentifier
	Backazimuth      *float64
	PhaseHint        *string
	Onset            PickOnset
	Polarity         PickPolarity
	EvaluationMode   EvaluationMode
	EvaluationStatus EvaluationStatus
	Comments         []*Comment
	CreationInfo     *CreationInfo
}

func (p *Pick) Validate() error {
	return checkEnums(
		enumCheck{"onset", p.Onset.IsValid()},
		enumCheck{"polarity", p.Polarity.IsValid()},
		enumCheck{"evaluation_mode", p.EvaluationMode.IsValid()},
		enumCheck{"evaluation_status", p.EvaluationStatus.IsValid()},
	)
}
