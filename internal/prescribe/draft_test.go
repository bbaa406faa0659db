package prescribe

import (
	"testing"

	"digital-prescription-server/internal/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDraftNilResultReturnsEmptyDraft(t *testing.T) {
	draft := BuildDraft(nil)

	require.Len(t, draft.Complaints, 1)
	require.Len(t, draft.Medicines, 1)
	assert.Equal(t, DraftComplaint{}, draft.Complaints[0])
	assert.Equal(t, DraftMedicine{}, draft.Medicines[0])
	assert.Empty(t, draft.Vitals.BP)
	assert.Empty(t, draft.Vitals.Pulse)
	assert.Empty(t, draft.Vitals.Temperature)
}

func TestBuildDraftCopiesVitalsVerbatim(t *testing.T) {
	result := &ai.ExtractionResult{
		Vitals: ai.ExtractedVitals{
			BP:          ai.StringValue{Value: "120/80", Confidence: 0.50},
			Pulse:       ai.StringValue{Value: "72", Confidence: 0.95},
			Temperature: ai.StringValue{Value: "98.6", Confidence: 0.99},
		},
	}

	draft := BuildDraft(result)

	assert.Equal(t, "120/80", draft.Vitals.BP)
	assert.Equal(t, "72", draft.Vitals.Pulse)
	assert.Equal(t, "98.6", draft.Vitals.Temperature)
	// The extractor has no source for weight/height
	assert.Empty(t, draft.Vitals.Weight)
	assert.Empty(t, draft.Vitals.Height)
}

func TestBuildDraftSplitsComplaintOnFirstHyphen(t *testing.T) {
	result := &ai.ExtractionResult{
		Complaints: []ai.StringValue{
			{Value: "Fever - 3 days", Confidence: 0.85},
		},
	}

	draft := BuildDraft(result)

	require.Len(t, draft.Complaints, 1)
	assert.Equal(t, DraftComplaint{
		Complaint: "Fever",
		Duration:  "3 days",
		Severity:  "Moderate",
	}, draft.Complaints[0])
}

func TestBuildDraftComplaintWithoutHyphenHasEmptyDuration(t *testing.T) {
	result := &ai.ExtractionResult{
		Complaints: []ai.StringValue{
			{Value: "Headache", Confidence: 0.80},
		},
	}

	draft := BuildDraft(result)

	require.Len(t, draft.Complaints, 1)
	assert.Equal(t, "Headache", draft.Complaints[0].Complaint)
	assert.Empty(t, draft.Complaints[0].Duration)
	assert.Equal(t, DefaultSeverity, draft.Complaints[0].Severity)
}

func TestBuildDraftMedicinesGetRouteAndInstructionDefaults(t *testing.T) {
	result := &ai.ExtractionResult{
		Medicines: []ai.ExtractedMedicine{
			{
				Name:      ai.StringValue{Value: "Paracetamol", Confidence: 0.98},
				Strength:  ai.StringValue{Value: "500mg", Confidence: 0.95},
				Frequency: ai.StringValue{Value: "1-0-1", Confidence: 0.90},
				Duration:  ai.StringValue{Value: "5 days", Confidence: 0.80},
			},
		},
	}

	draft := BuildDraft(result)

	require.Len(t, draft.Medicines, 1)
	assert.Equal(t, DraftMedicine{
		Name:         "Paracetamol",
		Strength:     "500mg",
		Frequency:    "1-0-1",
		Duration:     "5 days",
		Route:        "Oral",
		Instructions: "After Food",
	}, draft.Medicines[0])
}

func TestBuildDraftPreservesComplaintAndMedicineOrder(t *testing.T) {
	result := &ai.ExtractionResult{
		Complaints: []ai.StringValue{
			{Value: "Fever - 3 days"},
			{Value: "Cough - Mild"},
		},
		Medicines: []ai.ExtractedMedicine{
			{Name: ai.StringValue{Value: "Paracetamol"}},
			{Name: ai.StringValue{Value: "Amoxicillin"}},
		},
	}

	draft := BuildDraft(result)

	require.Len(t, draft.Complaints, 2)
	assert.Equal(t, "Fever", draft.Complaints[0].Complaint)
	assert.Equal(t, "Cough", draft.Complaints[1].Complaint)
	require.Len(t, draft.Medicines, 2)
	assert.Equal(t, "Paracetamol", draft.Medicines[0].Name)
	assert.Equal(t, "Amoxicillin", draft.Medicines[1].Name)
}

func TestSplitComplaintTrimsWhitespace(t *testing.T) {
	complaint, duration := splitComplaint("  Body ache -  1 week ")
	assert.Equal(t, "Body ache", complaint)
	assert.Equal(t, "1 week", duration)
}
