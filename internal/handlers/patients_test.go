package handlers_test

import (
	"net/http"
	"testing"

	"digital-prescription-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePatient(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, models.RoleDoctor)

	body := map[string]interface{}{
		"medicalId": "P001",
		"name":      "Alice Smith",
		"age":       34,
		"gender":    "Female",
		"mobile":    "555-9876",
	}

	w := env.doJSON(t, http.MethodPost, "/api/patients", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var patient models.Patient
	decodeData(t, w, &patient)
	assert.NotEmpty(t, patient.ID)
	assert.Equal(t, "P001", patient.MedicalID)
	assert.Equal(t, uint(34), patient.Age)
	assert.False(t, patient.CreatedAt.IsZero())
}

func TestCreatePatientDuplicateMedicalID(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, models.RoleDoctor)

	body := map[string]interface{}{
		"medicalId": "P001",
		"name":      "Alice Smith",
		"age":       34,
		"gender":    "Female",
		"mobile":    "555-9876",
	}

	w := env.doJSON(t, http.MethodPost, "/api/patients", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	body["name"] = "Someone Else"
	w = env.doJSON(t, http.MethodPost, "/api/patients", token, body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeEnvelope(t, w).Error, "already exists")

	// The registry never holds two records with the same medical ID
	var count int64
	require.NoError(t, env.DB.Model(&models.Patient{}).Where("medical_id = ?", "P001").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreatePatientUniqueIndexBacksHandlerCheck(t *testing.T) {
	env := newTestEnv(t)
	env.createPatient(t, "P001", "Alice Smith")

	duplicate := models.Patient{MedicalID: "P001", Name: "Imposter", Age: 40, Gender: "Male", Mobile: "555-0000"}
	err := env.DB.Create(&duplicate).Error
	require.Error(t, err, "unique index must reject duplicate medical IDs")
}

func TestCreatePatientMissingRequiredFields(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, models.RoleDoctor)

	w := env.doJSON(t, http.MethodPost, "/api/patients", token, map[string]interface{}{
		"medicalId": "P002",
		"name":      "No Age",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPatientsKeywordSearchIsCaseInsensitiveSubstring(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, models.RoleDoctor)
	env.createPatient(t, "P001", "Alice Smith")
	env.createPatient(t, "P002", "bob Allison")
	env.createPatient(t, "P003", "Charlie Brown")

	w := env.doJSON(t, http.MethodGet, "/api/patients?keyword=al", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var patients []models.Patient
	decodeData(t, w, &patients)
	require.Len(t, patients, 2)

	names := []string{patients[0].Name, patients[1].Name}
	assert.ElementsMatch(t, []string{"Alice Smith", "bob Allison"}, names)
}

func TestGetPatientsWithoutKeywordReturnsAll(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, models.RoleStaff)
	env.createPatient(t, "P001", "Alice Smith")
	env.createPatient(t, "P002", "bob Allison")

	w := env.doJSON(t, http.MethodGet, "/api/patients", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var patients []models.Patient
	decodeData(t, w, &patients)
	assert.Len(t, patients, 2)
}

func TestGetPatientByID(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, models.RoleDoctor)
	patient := env.createPatient(t, "P001", "Alice Smith")

	w := env.doJSON(t, http.MethodGet, "/api/patients/"+patient.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Patient
	decodeData(t, w, &fetched)
	assert.Equal(t, patient.ID, fetched.ID)
	assert.Equal(t, "Alice Smith", fetched.Name)
}

func TestGetPatientByIDNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, models.RoleDoctor)

	w := env.doJSON(t, http.MethodGet, "/api/patients/no-such-id", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPatientsRequireAuthentication(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/api/patients", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
