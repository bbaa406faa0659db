package ai

import (
	"context"
	"errors"
	"io"
)

// ErrNoFile is returned when no upload is supplied to an extractor.
var ErrNoFile = errors.New("no file uploaded")

// StringValue is an extracted text value with its confidence score.
type StringValue struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// IntValue is an extracted numeric value with its confidence score.
type IntValue struct {
	Value      int     `json:"value"`
	Confidence float64 `json:"confidence"`
}

// ExtractedPatient holds patient demographics read off a prescription image.
type ExtractedPatient struct {
	Name   StringValue `json:"name"`
	Age    IntValue    `json:"age"`
	Gender StringValue `json:"gender"`
}

// ExtractedVitals holds the vitals an extractor can source. Weight and
// height are not extracted and are left to user input on the draft.
type ExtractedVitals struct {
	BP          StringValue `json:"bp"`
	Pulse       StringValue `json:"pulse"`
	Temperature StringValue `json:"temperature"`
}

// ExtractedMedicine is one medicine line with each field scored separately.
type ExtractedMedicine struct {
	Name      StringValue `json:"name"`
	Strength  StringValue `json:"strength"`
	Frequency StringValue `json:"frequency"`
	Duration  StringValue `json:"duration"`
}

// ExtractionResult is the structured document produced from an uploaded
// prescription image. It is ephemeral: consumed as pre-fill input for a
// new prescription draft and never persisted.
//
// Complaint values encode a free-text complaint and an embedded duration
// separated by a hyphen, e.g. "Fever - 3 days".
type ExtractionResult struct {
	Patient         ExtractedPatient    `json:"patient"`
	Complaints      []StringValue       `json:"complaints"`
	Vitals          ExtractedVitals     `json:"vitals"`
	Medicines       []ExtractedMedicine `json:"medicines"`
	ConfidenceScore float64             `json:"confidenceScore"`
}

// Extractor analyzes an uploaded prescription file and produces a
// structured result. The mock implementation is the only one shipped;
// a real extraction engine would plug in behind the same interface.
type Extractor interface {
	Process(ctx context.Context, upload io.Reader) (*ExtractionResult, error)
}
