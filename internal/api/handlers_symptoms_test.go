package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/utero/internal/models"
)

func symptomNames(symptoms []models.Symptom) []string {
	names := make([]string, 0, len(symptoms))
	for _, symptom := range symptoms {
		names = append(names, string(symptom))
	}
	return names
}

func TestGetSymptomsCatalog(t *testing.T) {
	ta := newTestApp(t)

	status, body := ta.get(t, "/api/symptoms?lang=ru")
	require.Equal(t, http.StatusOK, status)

	catalog := decodeJSON[struct {
		Symptoms []symptomResponse `json:"symptoms"`
	}](t, body)
	require.Len(t, catalog.Symptoms, 8)
	assert.Equal(t, models.SymptomCramps, catalog.Symptoms[0].Name)
	assert.Equal(t, "Спазмы", catalog.Symptoms[0].Label)
	assert.Equal(t, models.SymptomTenderBreasts, catalog.Symptoms[7].Name)
	assert.Equal(t, "Чувствительность груди", catalog.Symptoms[7].Label)
}

func TestToggleSymptomRoundTrip(t *testing.T) {
	ta := newTestApp(t)

	status, body := ta.get(t, "/api/logs/2024-02-10")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"date":"2024-02-10","symptoms":[]}`, body)

	status, body = ta.post(t, "/api/logs/2024-02-10/toggle", `{"symptom":"Headache"}`)
	require.Equal(t, http.StatusOK, status, body)
	status, body = ta.post(t, "/api/logs/2024-02-10/toggle", `{"symptom":"Mood Swings"}`)
	require.Equal(t, http.StatusOK, status, body)
	assert.JSONEq(t, `{"date":"2024-02-10","symptoms":["Headache","Mood Swings"]}`, body)

	status, body = ta.post(t, "/api/logs/2024-02-10/toggle", `{"symptom":"Headache"}`)
	require.Equal(t, http.StatusOK, status, body)
	assert.JSONEq(t, `{"date":"2024-02-10","symptoms":["Mood Swings"]}`, body)

	_, body = ta.get(t, "/api/logs/2024-02-10")
	assert.JSONEq(t, `{"date":"2024-02-10","symptoms":["Mood Swings"]}`, body)
}

func TestToggleSymptomValidation(t *testing.T) {
	ta := newTestApp(t)

	status, body := ta.post(t, "/api/logs/2024-02-10/toggle", `{"symptom":"Sneezing"}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, `unknown symptom "Sneezing"`, decodeJSON[map[string]string](t, body)["error"])

	status, body = ta.post(t, "/api/logs/2024-02-10/toggle", `{}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "symptom is required", decodeJSON[map[string]string](t, body)["error"])

	status, _ = ta.post(t, "/api/logs/10-02-2024/toggle", `{"symptom":"Acne"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = ta.get(t, "/api/logs/not-a-day")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSymptomMessageKey(t *testing.T) {
	assert.Equal(t, "symptom.tender_breasts", symptomMessageKey(models.SymptomTenderBreasts))
	assert.Equal(t, "symptom.acne", symptomMessageKey(models.SymptomAcne))
}
