package catmap_test

import (
	"reflect"
	"testing"

	catmap "github.com/reoring/catmap"
	"github.com/reoring/catmap/event"
)

func TestDefaultRegistryKeys(t *testing.T) {
	r := catmap.DefaultRegistry()

	cases := map[string]reflect.Type{
		"event":         reflect.TypeOf(event.Event{}),
		"events":        reflect.TypeOf(event.Event{}),
		"magnitude":     reflect.TypeOf(event.Magnitude{}),
		"magnitudes":    reflect.TypeOf(event.Magnitude{}),
		"picks":         reflect.TypeOf(event.Pick{}),
		"origins":       reflect.TypeOf(event.Origin{}),
		"creation_info": reflect.TypeOf(event.CreationInfo{}),
		"quality":       reflect.TypeOf(event.OriginQuality{}),
		"waveform_id":   reflect.TypeOf(event.WaveformStreamID{}),
		"mag":           reflect.TypeOf(float64(0)),
		"station_count": reflect.TypeOf(int(0)),
		// seeds
		"mag_errors":    reflect.TypeOf(event.QuantityError{}),
		"time":          reflect.TypeOf(event.Time{}),
		"creation_time": reflect.TypeOf(event.Time{}),
		"reference":     reflect.TypeOf(event.Time{}),
	}
	for key, want := range cases {
		got, ok := r.Lookup(key)
		if !ok {
			t.Fatalf("key %q not registered", key)
		}
		if got != want {
			t.Fatalf("key %q: got %v want %v", key, got, want)
		}
	}
}

func TestRegistrySkipsEnumProperties(t *testing.T) {
	r := catmap.DefaultRegistry()
	for _, key := range []string{"onset", "polarity", "evaluation_mode", "event_type", "depth_type", "unit"} {
		if _, ok := r.Lookup(key); ok {
			t.Fatalf("enum key %q must not be registered", key)
		}
	}
}

func TestRegistryMissIsNotAnError(t *testing.T) {
	r := catmap.DefaultRegistry()
	if _, ok := r.Lookup("no_such_key"); ok {
		t.Fatalf("unexpected registration")
	}
}

type conflictA struct{ Shared string }
type conflictB struct{ Shared int }

func TestRegistryConflictIsExplicit(t *testing.T) {
	classes := []event.Class{
		{Type: reflect.TypeOf(conflictA{}), Properties: []event.Property{{Name: "shared", Type: reflect.TypeOf("")}}},
		{Type: reflect.TypeOf(conflictB{}), Properties: []event.Property{{Name: "shared", Type: reflect.TypeOf(0)}}},
	}
	_, err := catmap.NewRegistry(classes)
	if err == nil {
		t.Fatalf("expected conflict error")
	}
	iss, ok := catmap.AsIssues(err)
	if !ok || iss[0].Code != catmap.CodeRegistryConflict {
		t.Fatalf("expected registry_conflict issue, got %v", err)
	}
}

type shadowTime struct{ When string }

func TestSeededKeysAreNeverOverridden(t *testing.T) {
	// a class declaring a "time" property of its own type must not displace
	// the seeded timestamp binding, and must not error either.
	classes := []event.Class{
		{Type: reflect.TypeOf(shadowTime{}), Properties: []event.Property{{Name: "time", Type: reflect.TypeOf(shadowTime{})}}},
	}
	r, err := catmap.NewRegistry(classes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := r.Lookup("time")
	if !ok || got != reflect.TypeOf(event.Time{}) {
		t.Fatalf("seeded key was displaced: %v", got)
	}
}

func TestCanonicalHierarchyHasNoConflicts(t *testing.T) {
	if _, err := catmap.NewRegistry(event.Classes()); err != nil {
		t.Fatalf("canonical hierarchy must build cleanly: %v", err)
	}
}
