package adapters

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-engine/internal/mortgage"
	"github.com/iwvelando/mortgage-engine/pkg/testutil"
)

func TestFromTrackSetsOnlyKindFields(t *testing.T) {
	tests := []struct {
		name     string
		track    mortgage.Track
		wantType string
		check    func(t *testing.T, doc MortgageTrack)
	}{
		{
			name:     "nil terms",
			track:    mortgage.Track{ID: "a"},
			wantType: "fixed",
			check: func(t *testing.T, doc MortgageTrack) {
				if doc.Margin != nil || doc.GracePeriodMonths != nil || doc.BridgePeriodMonths != nil || doc.BaseCPI != nil {
					t.Errorf("FromTrack() set optional fields on a fixed track: %+v", doc)
				}
			},
		},
		{
			name:     "bridge",
			track:    mortgage.Track{ID: "b", Terms: mortgage.BridgeTerms{BridgePeriodMonths: 6, BalloonPayment: true}},
			wantType: "bridge",
			check: func(t *testing.T, doc MortgageTrack) {
				if doc.BridgePeriodMonths == nil || *doc.BridgePeriodMonths != 6 || doc.HasBalloonPayment == nil || !*doc.HasBalloonPayment {
					t.Errorf("FromTrack() bridge fields = %+v", doc)
				}
				if doc.MaturityDate != nil {
					t.Errorf("FromTrack() MaturityDate = %v, expected nil", *doc.MaturityDate)
				}
			},
		},
		{
			name:     "unrecognized keeps its label",
			track:    mortgage.Track{ID: "c", Terms: mortgage.UnrecognizedTerms{Label: "dollar_linked"}},
			wantType: "dollar_linked",
			check:    func(t *testing.T, doc MortgageTrack) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := FromTrack(tt.track)
			if doc.TrackType != tt.wantType {
				t.Errorf("FromTrack() TrackType = %q, expected %q", doc.TrackType, tt.wantType)
			}
			tt.check(t, doc)
		})
	}
}

func TestFromStateJSONShape(t *testing.T) {
	state := testutil.SampleState()
	state.AmortizationTable = []mortgage.AmortizationEntry{}

	data, err := json.Marshal(FromState(state))
	if err != nil {
		t.Fatalf("json.Marshal() returned error: %v", err)
	}
	body := string(data)

	for _, want := range []string{
		`"mortgage_id":"MTG-2024-0001"`,
		`"current_cpi_index":103.2`,
		`"base_cpi_index":100`,
		`"track_type":"index_linked_variable"`,
		`"amortization_table":[]`,
		`"breakdown":[]`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("FromState() JSON missing %s", want)
		}
	}

	state.AmortizationTable = nil
	data, _ = json.Marshal(FromState(state))
	if !strings.Contains(string(data), `"amortization_table":null`) {
		t.Error(`FromState() JSON expected "amortization_table":null for a state without a table`)
	}
}

func TestFromChangeLog(t *testing.T) {
	got := FromChangeLog(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("FromChangeLog(nil) = %v, expected empty map", got)
	}

	got = FromChangeLog(mortgage.ChangeLog{mortgage.ChangePrimeRate: {Old: 0.05, New: 0.055}})
	data, _ := json.Marshal(got)
	if string(data) != `{"prime_rate_change":{"old":0.05,"new":0.055}}` {
		t.Errorf("FromChangeLog() JSON = %s", data)
	}
}

func TestToMarketUpdateCopiesPointers(t *testing.T) {
	rate := 0.04
	update := ToMarketUpdate(MonthlyChanges{NewPrimeRate: &rate, CalculationDate: "2025-01-01"})
	rate = 0.09
	if *update.NewPrimeRate != 0.04 {
		t.Errorf("ToMarketUpdate() NewPrimeRate = %v, expected 0.04", *update.NewPrimeRate)
	}
	if update.NewIndex != nil {
		t.Errorf("ToMarketUpdate() NewIndex = %v, expected nil", *update.NewIndex)
	}
}

func TestToTrackResolvesKind(t *testing.T) {
	tests := []struct {
		trackType string
		expected  mortgage.Kind
	}{
		{"", mortgage.KindFixed},
		{"fixed", mortgage.KindFixed},
		{"variable_prime", mortgage.KindVariablePrime},
		{"index_linked_variable", mortgage.KindIndexLinked},
		{"grace_period", mortgage.KindGracePeriod},
		{"bridge", mortgage.KindBridge},
		{"dollar_linked", mortgage.Kind("dollar_linked")},
	}

	for _, tt := range tests {
		t.Run(tt.trackType, func(t *testing.T) {
			track := ToTrack(MortgageTrack{TrackID: "t", TrackType: tt.trackType})
			if got := track.Kind(); got != tt.expected {
				t.Errorf("ToTrack(%q).Kind() = %q, expected %q", tt.trackType, got, tt.expected)
			}
			_, unrecognized := track.Terms.(mortgage.UnrecognizedTerms)
			if unrecognized == tt.expected.Known() {
				t.Errorf("ToTrack(%q) terms = %T, unrecognized = %v", tt.trackType, track.Terms, unrecognized)
			}
		})
	}
}
