package prescription

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medhq/hms-api/internal/derive"
	"github.com/medhq/hms-api/internal/model"
	"github.com/medhq/hms-api/internal/repository/memory"
)

func newTestService() *Service {
	return NewService(memory.NewPrescriptionRepository())
}

func TestListFiltersByStatus(t *testing.T) {
	svc := newTestService()

	got, err := svc.List(context.Background(), derive.Criteria{Status: model.PrescriptionStatusActive})
	require.NoError(t, err)

	require.Len(t, got, 3)
	for _, p := range got {
		assert.Equal(t, model.PrescriptionStatusActive, p.Status)
	}
}

func TestListMatchesMedication(t *testing.T) {
	svc := newTestService()

	got, err := svc.List(context.Background(), derive.Criteria{Query: "metf"})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "Metformin", got[0].Medication)
}

func TestUpdateTouchesOnlyProvidedFields(t *testing.T) {
	svc := newTestService()

	dosage := "250mg"
	got, err := svc.Update(context.Background(), "1", &model.UpdatePrescriptionRequest{Dosage: &dosage})
	require.NoError(t, err)

	assert.Equal(t, "250mg", got.Dosage)
	assert.Equal(t, "Amoxicillin", got.Medication)
	assert.Equal(t, model.PrescriptionStatusActive, got.Status)
}

func TestCreateStartsActive(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), &model.CreatePrescriptionRequest{
		PatientName: "Sarah Davis",
		Doctor:      "Dr. Garcia",
		Medication:  "Ibuprofen",
		Dosage:      "400mg",
		Frequency:   "Twice daily",
		Duration:    "5 days",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.PrescriptionStatusActive, created.Status)

	stored, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ibuprofen", stored.Medication)
}
