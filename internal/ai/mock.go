package ai

import (
	"context"
	"io"
	"time"
)

// DefaultProcessingDelay is the simulated processing latency.
const DefaultProcessingDelay = 2 * time.Second

// MockExtractor simulates an AI extraction engine. It waits for a fixed
// delay to emulate processing time and returns the same payload
// regardless of the uploaded bytes. Callers must not rely on the output
// reflecting the upload in any way.
type MockExtractor struct {
	Delay time.Duration
}

// NewMockExtractor creates a MockExtractor with the default delay.
func NewMockExtractor() *MockExtractor {
	return &MockExtractor{Delay: DefaultProcessingDelay}
}

// Process implements Extractor. The upload's contents are ignored, but a
// missing upload is still an error so the endpoint behaves like a real
// extractor would.
func (m *MockExtractor) Process(ctx context.Context, upload io.Reader) (*ExtractionResult, error) {
	if upload == nil {
		return nil, ErrNoFile
	}

	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	result := mockResult()
	return &result, nil
}

// mockResult builds the fixed extraction payload. A fresh value is
// returned each call so callers cannot mutate shared state.
func mockResult() ExtractionResult {
	return ExtractionResult{
		Patient: ExtractedPatient{
			Name:   StringValue{Value: "John Doe", Confidence: 0.95},
			Age:    IntValue{Value: 45, Confidence: 0.88},
			Gender: StringValue{Value: "Male", Confidence: 0.92},
		},
		Complaints: []StringValue{
			{Value: "Fever - 3 days", Confidence: 0.85},
			{Value: "Cough - Mild", Confidence: 0.90},
		},
		Vitals: ExtractedVitals{
			BP:          StringValue{Value: "120/80", Confidence: 0.50}, // low confidence example
			Pulse:       StringValue{Value: "72", Confidence: 0.95},
			Temperature: StringValue{Value: "98.6", Confidence: 0.99},
		},
		Medicines: []ExtractedMedicine{
			{
				Name:      StringValue{Value: "Paracetamol", Confidence: 0.98},
				Strength:  StringValue{Value: "500mg", Confidence: 0.95},
				Frequency: StringValue{Value: "1-0-1", Confidence: 0.90},
				Duration:  StringValue{Value: "5 days", Confidence: 0.80},
			},
			{
				Name:      StringValue{Value: "Amoxicillin", Confidence: 0.95},
				Strength:  StringValue{Value: "250mg", Confidence: 0.92},
				Frequency: StringValue{Value: "1-1-1", Confidence: 0.91},
				Duration:  StringValue{Value: "3 days", Confidence: 0.85},
			},
		},
		ConfidenceScore: 0.89,
	}
}
