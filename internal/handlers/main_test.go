package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"digital-prescription-server/internal/config"
	"digital-prescription-server/internal/models"
	"digital-prescription-server/internal/routes"
	"digital-prescription-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// envelope mirrors utils.ResponseData with raw data for per-test decoding.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type testEnv struct {
	Router *gin.Engine
	DB     *gorm.DB
	Cfg    *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))

	cfg := &config.Config{
		Port:                      "0",
		Origin:                    "http://localhost",
		Environment:               "test",
		JWTSecret:                 "test_jwt_secret",
		JWTRefreshSecret:          "test_refresh_secret",
		JWTExpirationMinutes:      15,
		JWTRefreshExpirationHours: 1,
		UploadDir:                 t.TempDir(),
		AIProcessingDelayMs:       0,
	}

	router := gin.New()
	routes.SetupRoutes(router, db, cfg)

	return &testEnv{Router: router, DB: db, Cfg: cfg}
}

// createUser stores a user with the given role and returns it with a
// valid access token.
func (e *testEnv) createUser(t *testing.T, role models.Role) (models.User, string) {
	t.Helper()

	user := models.User{
		Name:  "Test " + string(role),
		Email: fmt.Sprintf("%s-%s@example.com", role, t.Name()),
		Role:  role,
	}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, e.DB.Create(&user).Error)

	token, _, err := utils.GenerateTokens(&user, e.Cfg)
	require.NoError(t, err)
	return user, token
}

// createDoctorProfile stores a profile for the given user.
func (e *testEnv) createDoctorProfile(t *testing.T, userID string) models.DoctorProfile {
	t.Helper()

	profile := models.DoctorProfile{
		UserID:             userID,
		RegistrationNumber: "REG12345",
		Qualification:      "MBBS, MD",
		Specialization:     "Cardiology",
	}
	require.NoError(t, e.DB.Create(&profile).Error)
	return profile
}

// createPatient stores a patient record directly.
func (e *testEnv) createPatient(t *testing.T, medicalID, name string) models.Patient {
	t.Helper()

	patient := models.Patient{
		MedicalID: medicalID,
		Name:      name,
		Age:       34,
		Gender:    "Female",
		Mobile:    "555-9876",
	}
	require.NoError(t, e.DB.Create(&patient).Error)
	return patient
}

// doJSON performs a JSON request against the router.
func (e *testEnv) doJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

// doMultipart performs a multipart form request against the router.
func (e *testEnv) doMultipart(t *testing.T, method, path, token string, fields map[string]string, files map[string][]byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for field, data := range files {
		part, err := writer.CreateFormFile(field, field+".png")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

// decodeEnvelope parses the standard response envelope.
func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// decodeData parses the envelope's data into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Data, "expected data in response: %s", w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, out))
}

