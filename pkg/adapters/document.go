package adapters

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/iwvelando/mortgage-engine/internal/mortgage"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedDocument is returned when a document holds neither a mortgage
// state nor an update request.
var ErrUnsupportedDocument = errors.New("document is neither a mortgage state nor an update request")

// Document is a decoded state file. Changes is set only when the file was an
// update request carrying monthly_changes.
type Document struct {
	State   mortgage.State
	Changes *mortgage.MarketUpdate
}

// Decode reads a bare mortgage state or an update request
// ({mortgage_state, monthly_changes}) in YAML or JSON.
func Decode(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read document: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, fmt.Errorf("empty document: %w", ErrUnsupportedDocument)
	}

	var request UpdateMortgageRequest
	if err := unmarshal(data, &request); err != nil {
		return Document{}, err
	}
	if request.MortgageState != nil {
		doc := Document{State: ToState(*request.MortgageState)}
		if request.MonthlyChanges != nil {
			update := ToMarketUpdate(*request.MonthlyChanges)
			doc.Changes = &update
		}
		return doc, nil
	}

	var state MortgageState
	if err := unmarshal(data, &state); err != nil {
		return Document{}, err
	}
	if state.MortgageID == "" && len(state.Tracks) == 0 {
		return Document{}, ErrUnsupportedDocument
	}
	return Document{State: ToState(state)}, nil
}

// DecodeState reads a mortgage state from r, ignoring any monthly changes.
func DecodeState(r io.Reader) (mortgage.State, error) {
	doc, err := Decode(r)
	if err != nil {
		return mortgage.State{}, err
	}
	return doc.State, nil
}

// EncodeState writes state to w as a YAML wire document.
func EncodeState(w io.Writer, state mortgage.State) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromState(state)); err != nil {
		return fmt.Errorf("failed to encode mortgage state: %w", err)
	}
	return enc.Close()
}

// unmarshal decodes JSON objects with encoding/json and everything else as
// YAML, since JSON indented with tabs is not valid YAML.
func unmarshal(data []byte, v any) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON document: %w", err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse YAML document: %w", err)
	}
	return nil
}
