package catmap_test

import (
	"reflect"
	"strings"
	"testing"

	catmap "github.com/reoring/catmap"
	"github.com/reoring/catmap/event"
)

func TestTopLevelMustBeMapping(t *testing.T) {
	_, err := catmap.ToCatalog(nil)
	if err == nil {
		t.Fatalf("expected error for nil top-level input")
	}
	iss, ok := catmap.AsIssues(err)
	if !ok || iss[0].Code != catmap.CodeInvalidType {
		t.Fatalf("expected invalid_type issue, got %v", err)
	}
}

func TestExampleReconstruction(t *testing.T) {
	m := map[string]any{
		"events": []any{map[string]any{
			"resource_id": "smi:local/abc",
			"creation_info": map[string]any{
				"creation_time": "2020-01-01T00:00:00",
			},
			"magnitudes": []any{map[string]any{
				"mag":        4.5,
				"mag_errors": 0.1,
			}},
		}},
	}
	cat, err := catmap.ToCatalog(m)
	if err != nil {
		t.Fatalf("ToCatalog: %v", err)
	}
	if len(cat.Events) != 1 {
		t.Fatalf("events: %d", len(cat.Events))
	}
	e := cat.Events[0]
	if e.ResourceID.String() != "smi:local/abc" {
		t.Fatalf("resource_id: %v", e.ResourceID)
	}
	if e.CreationInfo.CreationTime.String() != "2020-01-01T00:00:00" {
		t.Fatalf("creation_time: %v", e.CreationInfo.CreationTime)
	}
	mg := e.Magnitudes[0]
	if *mg.Mag != 4.5 {
		t.Fatalf("mag: %v", *mg.Mag)
	}
	if *mg.MagErrors.Uncertainty != 0.1 {
		t.Fatalf("mag_errors: %v", mg.MagErrors)
	}

	// forward conversion reproduces the reconstructed event structurally
	out := catmap.ToGeneric(cat).(map[string]any)
	ev := out["events"].([]any)[0].(map[string]any)
	if ev["resource_id"] != "smi:local/abc" {
		t.Fatalf("forward resource_id: %v", ev["resource_id"])
	}
	mm := ev["magnitudes"].([]any)[0].(map[string]any)
	if mm["mag"] != 4.5 {
		t.Fatalf("forward mag: %v", mm["mag"])
	}
}

func TestNullPassThrough(t *testing.T) {
	m := map[string]any{
		"events": []any{map[string]any{
			"resource_id": nil, // explicitly null, must survive the default
			"magnitudes":  nil,
		}},
	}
	cat, err := catmap.ToCatalog(m)
	if err != nil {
		t.Fatalf("ToCatalog: %v", err)
	}
	e := cat.Events[0]
	if e.ResourceID != nil {
		t.Fatalf("explicit null was overridden by a constructor default: %v", e.ResourceID)
	}
	if e.Magnitudes != nil {
		t.Fatalf("null container became %v", e.Magnitudes)
	}
}

func TestEmptyMappingIsNotConstructed(t *testing.T) {
	// an empty mapping element is intentionally left unconstructed; the raw
	// map then reaches the catalog constructor, which rejects it. The
	// absent-vs-empty ambiguity belongs to the domain layer, not to us.
	_, err := catmap.ToCatalog(map[string]any{"events": []any{map[string]any{}}})
	if err == nil {
		t.Fatalf("expected construction failure for an empty mapping element")
	}
	iss, ok := catmap.AsIssues(err)
	if !ok || iss[0].Code != catmap.CodeConstructError {
		t.Fatalf("expected construct_error issue, got %v", err)
	}
}

func TestNonDestructiveLeavesInputUntouched(t *testing.T) {
	m := map[string]any{
		"events": []any{map[string]any{
			"resource_id": "smi:local/e1",
			"magnitudes":  []any{map[string]any{"mag": 4.5}},
		}},
	}
	snapshot := map[string]any{
		"events": []any{map[string]any{
			"resource_id": "smi:local/e1",
			"magnitudes":  []any{map[string]any{"mag": 4.5}},
		}},
	}
	if _, err := catmap.ToCatalog(m); err != nil {
		t.Fatalf("ToCatalog: %v", err)
	}
	if !reflect.DeepEqual(m, snapshot) {
		t.Fatalf("non-destructive mode mutated the input: %#v", m)
	}
}

func TestDestructiveRebuildsInPlace(t *testing.T) {
	m := map[string]any{
		"events": []any{map[string]any{
			"resource_id": "smi:local/e1",
		}},
	}
	if _, err := catmap.ToCatalog(m, catmap.ConvertOpt{Destructive: true}); err != nil {
		t.Fatalf("ToCatalog: %v", err)
	}
	if _, ok := m["events"].([]any)[0].(*event.Event); !ok {
		t.Fatalf("destructive mode did not rebuild in place: %T", m["events"].([]any)[0])
	}
}

func TestScalarSoleArgumentConstruction(t *testing.T) {
	m := map[string]any{
		"events": []any{map[string]any{
			"origins": []any{map[string]any{
				"time":       "2020-01-01T12:00:00",
				"depth":      10000.0,
				"depth_type": "from location",
			}},
		}},
	}
	cat, err := catmap.ToCatalog(m)
	if err != nil {
		t.Fatalf("ToCatalog: %v", err)
	}
	o := cat.Events[0].Origins[0]
	if o.Time.String() != "2020-01-01T12:00:00" {
		t.Fatalf("time: %v", o.Time)
	}
	if *o.Depth != 10000.0 {
		t.Fatalf("depth: %v", *o.Depth)
	}
	if o.DepthType != event.DepthFromLocation {
		t.Fatalf("depth_type: %v", o.DepthType)
	}
}

func TestIntParametersCoerceFromFloat(t *testing.T) {
	m := map[string]any{
		"events": []any{map[string]any{
			"magnitudes": []any{map[string]any{
				"mag":           4.5,
				"station_count": 12.0, // JSON numbers arrive as float64
			}},
		}},
	}
	cat, err := catmap.ToCatalog(m)
	if err != nil {
		t.Fatalf("ToCatalog: %v", err)
	}
	if *cat.Events[0].Magnitudes[0].StationCount != 12 {
		t.Fatalf("station_count: %v", *cat.Events[0].Magnitudes[0].StationCount)
	}
}

func TestUnknownParameterFailsConstruction(t *testing.T) {
	m := map[string]any{
		"events": []any{map[string]any{"warp_factor": 9}},
	}
	_, err := catmap.ToCatalog(m)
	if err == nil {
		t.Fatalf("expected construction failure for unknown parameter")
	}
	iss, ok := catmap.AsIssues(err)
	if !ok || iss[0].Code != catmap.CodeUnknownParam {
		t.Fatalf("expected unknown_param issue, got %v", err)
	}
	if !strings.Contains(iss[0].Path, "warp_factor") {
		t.Fatalf("issue path should name the key: %v", iss[0].Path)
	}
}

func TestDomainValidationErrorsPropagate(t *testing.T) {
	m := map[string]any{
		"events": []any{map[string]any{"event_type": "volcano sneeze"}},
	}
	_, err := catmap.ToCatalog(m)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if _, ok := catmap.AsIssues(err); ok {
		t.Fatalf("domain errors must propagate unwrapped, got Issues: %v", err)
	}
	if !strings.Contains(err.Error(), "event_type") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInvalidScalarForTypedFieldFails(t *testing.T) {
	m := map[string]any{
		"events": []any{map[string]any{
			"origins": []any{map[string]any{"time": "not a time"}},
		}},
	}
	_, err := catmap.ToCatalog(m)
	if err == nil {
		t.Fatalf("expected scalar construction failure")
	}
	iss, ok := catmap.AsIssues(err)
	if !ok || iss[0].Code != catmap.CodeConstructError {
		t.Fatalf("expected construct_error issue, got %v", err)
	}
	if iss[0].Cause == nil {
		t.Fatalf("domain cause must be preserved")
	}
}

func TestPlainScalarPropertiesSurviveResolution(t *testing.T) {
	// "description" is registered as a plain string property, so scalar
	// construction returns the assignable value unchanged and construction
	// assigns it to the field directly.
	m := map[string]any{
		"description": "aftershock survey",
		"events":      []any{},
	}
	cat, err := catmap.ToCatalog(m)
	if err != nil {
		t.Fatalf("ToCatalog: %v", err)
	}
	if cat.Description == nil || *cat.Description != "aftershock survey" {
		t.Fatalf("description: %v", cat.Description)
	}
	if len(cat.Events) != 0 {
		t.Fatalf("events: %v", cat.Events)
	}
}

func TestCatalogDefaultResourceID(t *testing.T) {
	cat, err := catmap.ToCatalog(map[string]any{"description": "x"})
	if err != nil {
		t.Fatalf("ToCatalog: %v", err)
	}
	if cat.ResourceID == nil {
		t.Fatalf("catalog default resource id missing")
	}

	cat2, err := catmap.ToCatalog(map[string]any{"resource_id": nil})
	if err != nil {
		t.Fatalf("ToCatalog: %v", err)
	}
	if cat2.ResourceID != nil {
		t.Fatalf("explicit null must win over the default")
	}
}

func TestEmptyResourceIDIsPreserved(t *testing.T) {
	// identifiers are only ever generated for absent or null keys; an
	// explicitly empty id stays empty.
	cat, err := catmap.ToCatalog(map[string]any{"resource_id": ""})
	if err != nil {
		t.Fatalf("ToCatalog: %v", err)
	}
	if cat.ResourceID == nil || cat.ResourceID.ID != "" {
		t.Fatalf("empty resource id was rewritten: %v", cat.ResourceID)
	}
}

func TestConstructedRecordsPassThrough(t *testing.T) {
	text := "prebuilt"
	m := map[string]any{
		"events": []any{map[string]any{
			"resource_id": "smi:local/event/1",
			"comments":    []any{&event.Comment{Text: &text}},
		}},
	}
	cat, err := catmap.ToCatalog(m)
	if err != nil {
		t.Fatalf("ToCatalog: %v", err)
	}
	got := cat.Events[0].Comments
	if len(got) != 1 || got[0].Text == nil || *got[0].Text != "prebuilt" {
		t.Fatalf("comments: %v", got)
	}
}
