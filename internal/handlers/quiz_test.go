// internal/handlers/quiz_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupQuizRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	handler := NewQuizHandler()
	r.GET("/v1/quiz/questions", handler.GetQuestions)
	r.POST("/v1/quiz/recommendation", handler.GetRecommendation)
	return r
}

func TestGetQuestions(t *testing.T) {
	r := setupQuizRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/quiz/questions", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Questions []struct {
				ID      int    `json:"id"`
				Text    string `json:"text"`
				Options []struct {
					Label string `json:"label"`
					Value string `json:"value"`
				} `json:"options"`
			} `json:"questions"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	require.Len(t, resp.Data.Questions, 4)
	assert.Equal(t, 1, resp.Data.Questions[0].ID)
	assert.Len(t, resp.Data.Questions[0].Options, 4)
}

func TestGetRecommendation(t *testing.T) {
	r := setupQuizRouter()

	body := map[string]interface{}{
		"answers": map[string]string{
			"1": "nutty",
			"2": "mild",
			"3": "low",
			"4": "filter",
		},
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/quiz/recommendation", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Recommendation struct {
				ProductID string `json:"product_id"`
				Grind     string `json:"grind"`
			} `json:"recommendation"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "kantutani-bolivia", resp.Data.Recommendation.ProductID)
	assert.Equal(t, "Molido medio", resp.Data.Recommendation.Grind)
}

func TestGetRecommendationPartialAnswers(t *testing.T) {
	r := setupQuizRouter()

	payload := []byte(`{"answers":{"4":"espresso"}}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/quiz/recommendation", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Recommendation struct {
				ProductID string `json:"product_id"`
				Grind     string `json:"grind"`
			} `json:"recommendation"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// espresso alone puts minas-gerais-brasil on top
	assert.Equal(t, "minas-gerais-brasil", resp.Data.Recommendation.ProductID)
	assert.Equal(t, "Molido fino", resp.Data.Recommendation.Grind)
}

func TestGetRecommendationBadBody(t *testing.T) {
	r := setupQuizRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/quiz/recommendation", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
