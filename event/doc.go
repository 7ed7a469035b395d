package event

// Package event defines the seismic event catalog hierarchy: Catalog at the
// root, Event records beneath it, and the Origin/Magnitude/Pick/Amplitude
// sub-records with their scalar types (Time, ResourceIdentifier,
// QuantityError) and enumerations.
//
// Design policy:
// - Records are plain structs; optional scalars are pointers so that "unset"
//   and "zero" stay distinguishable across serialization.
// - Every record declares its constructor parameters through Classes(); the
//   converter in the root package consumes that metadata and the records stay
//   unaware of how they are serialized.
// - Enumerations are named string types validated by the records themselves
//   (Validate), never by the converter.
