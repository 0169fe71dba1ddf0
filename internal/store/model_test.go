package store

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSectionMarshalKeepsSettingsNesting(t *testing.T) {
	section := Section{
		ID:    "sec-1",
		Type:  SectionFeatures,
		Order: 1,
		Features: []FeatureItem{
			{Icon: "Shield", Title: "Quality", Description: "Tested"},
		},
	}

	raw, err := json.Marshal(section)
	if err != nil {
		t.Fatalf("marshal section: %v", err)
	}
	if !strings.Contains(string(raw), `"settings":{"features":`) {
		t.Fatalf("expected features nested under settings, got %s", raw)
	}
}

func TestSectionMarshalOmitsSettingsForOtherTypes(t *testing.T) {
	raw, err := json.Marshal(Section{ID: "sec-2", Type: SectionText, Order: 1})
	if err != nil {
		t.Fatalf("marshal section: %v", err)
	}
	if strings.Contains(string(raw), "settings") {
		t.Fatalf("expected no settings payload for text sections, got %s", raw)
	}
}

func TestSectionUnmarshalRoundTrip(t *testing.T) {
	original := Section{
		ID:       "sec-3",
		Type:     SectionFeatures,
		Title:    "Values",
		Order:    2,
		Features: []FeatureItem{{Icon: "Heart", Title: "Care", Description: "Always"}},
	}

	raw, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal section: %v", err)
	}

	var decoded Section
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal section: %v", err)
	}
	if len(decoded.Features) != 1 || decoded.Features[0].Icon != "Heart" {
		t.Fatalf("expected features to round-trip, got %v", decoded.Features)
	}
}

func TestSectionUnmarshalToleratesMalformedSettings(t *testing.T) {
	raw := `{"id":"sec-4","type":"features","order":1,"settings":{"features":"not-a-list"}}`

	var decoded Section
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("expected malformed settings to be tolerated, got %v", err)
	}
	if decoded.Features != nil {
		t.Fatalf("expected malformed features to decode as empty, got %v", decoded.Features)
	}
}
