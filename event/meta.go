package event

import "reflect"

// Property is one single-valued attribute declaration: its snake_case name,
// its declared type, and whether that type is an enumeration. Enumeration
// properties are never pre-constructed by converters; record validation owns
// them.
type Property struct {
	Name string
	Type reflect.Type
	Enum bool
}

// Class declares one record type: its struct type, its single-valued
// properties and its ordered multi-valued container attributes. The set of
// constructor parameters of a record is exactly Containers followed by the
// property names.
type Class struct {
	Type       reflect.Type
	Properties []Property
	Containers []string
}

// Params returns the record's constructor parameter names: container names
// first, then property names, in declaration order.
func (c Class) Params() []string {
	out := make([]string, 0, len(c.Containers)+len(c.Properties))
	out = append(out, c.Containers...)
	for _, p := range c.Properties {
		out = append(out, p.Name)
	}
	return out
}

var (
	typeTime = reflect.TypeOf(Time{})
	typeRID  = reflect.TypeOf(ResourceIdentifier{})
	typeQE   = reflect.TypeOf(QuantityError{})
	typeCI   = reflect.TypeOf(CreationInfo{})
	typeWID  = reflect.TypeOf(WaveformStreamID{})
	typeTW   = reflect.TypeOf(TimeWindow{})
	typeOQ   = reflect.TypeOf(OriginQuality{})

	typeFloat  = reflect.TypeOf(float64(0))
	typeInt    = reflect.TypeOf(int(0))
	typeString = reflect.TypeOf("")
)

func prop(name string, t reflect.Type) Property     { return Property{Name: name, Type: t} }
func enumProp(name string, t reflect.Type) Property { return Property{Name: name, Type: t, Enum: true} }

// Classes enumerates every record type in the hierarchy together with its
// declared parameters. Converters walk this to build their registries; the
// records themselves never see it.
func Classes() []Class {
	return []Class{
		{
			Type: reflect.TypeOf(Catalog{}),
			Properties: []Property{
				prop("resource_id", typeRID),
				prop("description", typeString),
				prop("creation_info", typeCI),
			},
			Containers: []string{"events", "comments"},
		},
		{
			Type: reflect.TypeOf(Event{}),
			Properties: []Property{
				prop("resource_id", typeRID),
				enumProp("event_type", reflect.TypeOf(EventType(""))),
				enumProp("event_type_certainty", reflect.TypeOf(EventTypeCertainty(""))),
				prop("preferred_origin_id", typeRID),
				prop("preferred_magnitude_id", typeRID),
				prop("creation_info", typeCI),
			},
			Containers: []string{
				"picks", "amplitudes", "origins", "magnitudes",
				"station_magnitudes", "comments", "event_descriptions",
			},
		},
		{
			Type: reflect.TypeOf(Origin{}),
			Properties: []Property{
				prop("resource_id", typeRID),
				prop("time", typeTime),
				prop("time_errors", typeQE),
				prop("longitude", typeFloat),
				prop("longitude_errors", typeQE),
				prop("latitude", typeFloat),
				prop("latitude_errors", typeQE),
				prop("depth", typeFloat),
				prop("depth_errors", typeQE),
				enumProp("depth_type", reflect.TypeOf(OriginDepthType(""))),
				prop("method_id", typeRID),
				prop("earth_model_id", typeRID),
				prop("quality", typeOQ),
				prop("region", typeString),
				enumProp("evaluation_mode", reflect.TypeOf(EvaluationMode(""))),
				enumProp("evaluation_status", reflect.TypeOf(EvaluationStatus(""))),
			},
			Containers: []string{"arrivals", "comments"},
		},
		{
			Type: typeOQ,
			Properties: []Property{
				prop("associated_phase_count", typeInt),
				prop("used_phase_count", typeInt),
				prop("associated_station_count", typeInt),
				prop("used_station_count", typeInt),
				prop("standard_error", typeFloat),
				prop("azimuthal_gap", typeFloat),
				prop("minimum_distance", typeFloat),
				prop("maximum_distance", typeFloat),
				prop("median_distance", typeFloat),
			},
		},
		{
			Type: reflect.TypeOf(Arrival{}),
			Properties: []Property{
				prop("resource_id", typeRID),
				prop("pick_id", typeRID),
				prop("phase", typeString),
				prop("azimuth", typeFloat),
				prop("distance", typeFloat),
				prop("takeoff_angle", typeFloat),
				prop("time_residual", typeFloat),
				prop("time_weight", typeFloat),
				prop("creation_info", typeCI),
			},
			Containers: []string{"comments"},
		},
		{
			Type: reflect.TypeOf(Pick{}),
			Properties: []Property{
				prop("resource_id", typeRID),
				prop("time", typeTime),
				prop("time_errors", typeQE),
				prop("waveform_id", typeWID),
				prop("method_id", typeRID),
				prop("backazimuth", typeFloat),
				prop("phase_hint", typeString),
				enumProp("onset", reflect.TypeOf(PickOnset(""))),
				enumProp("polarity", reflect.TypeOf(PickPolarity(""))),
				enumProp("evaluation_mode", reflect.TypeOf(EvaluationMode(""))),
				enumProp("evaluation_status", reflect.TypeOf(EvaluationStatus(""))),
				prop("creation_info", typeCI),
			},
			Containers: []string{"comments"},
		},
		{
			Type: reflect.TypeOf(Magnitude{}),
			Properties: []Property{
				prop("resource_id", typeRID),
				prop("mag", typeFloat),
				prop("mag_errors", typeQE),
				prop("magnitude_type", typeString),
				prop("origin_id", typeRID),
				prop("method_id", typeRID),
				prop("station_count", typeInt),
				prop("azimuthal_gap", typeFloat),
				enumProp("evaluation_mode", reflect.TypeOf(EvaluationMode(""))),
				enumProp("evaluation_status", reflect.TypeOf(EvaluationStatus(""))),
				prop("creation_info", typeCI),
			},
			Containers: []string{"comments"},
		},
		{
			Type: reflect.TypeOf(StationMagnitude{}),
			Properties: []Property{
				prop("resource_id", typeRID),
				prop("origin_id", typeRID),
				prop("mag", typeFloat),
				prop("mag_errors", typeQE),
				prop("station_magnitude_type", typeString),
				prop("amplitude_id", typeRID),
				prop("waveform_id", typeWID),
				prop("creation_info", typeCI),
			},
			Containers: []string{"comments"},
		},
		{
			Type: reflect.TypeOf(Amplitude{}),
			Properties: []Property{
				prop("resource_id", typeRID),
				prop("generic_amplitude", typeFloat),
				prop("generic_amplitude_errors", typeQE),
				prop("type", typeString),
				enumProp("unit", reflect.TypeOf(AmplitudeUnit(""))),
				prop("period", typeFloat),
				prop("snr", typeFloat),
				prop("time_window", typeTW),
				prop("pick_id", typeRID),
				prop("waveform_id", typeWID),
				prop("magnitude_hint", typeString),
				enumProp("evaluation_mode", reflect.TypeOf(EvaluationMode(""))),
				prop("creation_info", typeCI),
			},
			Containers: []string{"comments"},
		},
		{
			Type: typeTW,
			Properties: []Property{
				prop("begin", typeFloat),
				prop("end", typeFloat),
				prop("reference", typeTime),
			},
		},
		{
			Type: typeCI,
			Properties: []Property{
				prop("agency_id", typeString),
				prop("agency_uri", typeRID),
				prop("author", typeString),
				prop("author_uri", typeRID),
				prop("creation_time", typeTime),
				prop("version", typeString),
			},
		},
		{
			Type: reflect.TypeOf(Comment{}),
			Properties: []Property{
				prop("text", typeString),
				prop("resource_id", typeRID),
				prop("creation_info", typeCI),
			},
		},
		{
			Type: typeWID,
			Properties: []Property{
				prop("network_code", typeString),
				prop("station_code", typeString),
				prop("location_code", typeString),
				prop("channel_code", typeString),
				prop("resource_uri", typeRID),
			},
		},
		{
			Type: reflect.TypeOf(EventDescription{}),
			Properties: []Property{
				prop("text", typeString),
				enumProp("type", reflect.TypeOf(EventDescriptionType(""))),
			},
		},
		{
			Type: typeQE,
			Properties: []Property{
				prop("uncertainty", typeFloat),
				prop("lower_uncertainty", typeFloat),
				prop("upper_uncertainty", typeFloat),
				prop("confidence_level", typeFloat),
			},
		},
		{
			Type: typeRID,
			Properties: []Property{
				prop("id", typeString),
			},
		},
		{Type: typeTime},
	}
}
