package assessments

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quiz-portal/internal/apperrors"
	"github.com/yourusername/quiz-portal/internal/session"
)

func newAssessmentRouter(log Log, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(NewService(log), nil)
	router := gin.New()
	api := router.Group("/api", func(c *gin.Context) {
		c.Set(session.ContextUserKey, userID)
	})
	api.POST("/assessment", h.Submit)
	api.GET("/assessments", h.List)
	api.GET("/assessments/:id", h.Get)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitHandlerSuccess(t *testing.T) {
	log := newMemoryLog()
	router := newAssessmentRouter(log, "alice")

	rec := doJSON(router, http.MethodPost, "/api/assessment", `{
		"subject": "ml",
		"answers": ["A", "C"],
		"questions": [{"question": "q1", "correctAnswer": "A"}, {"question": "q2", "correctAnswer": "B"}]
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "rec-1", payload["assessmentId"])
	assert.EqualValues(t, 1, payload["score"])
	assert.EqualValues(t, 2, payload["totalQuestions"])
	assert.EqualValues(t, 50, payload["percentage"])
	require.Len(t, log.records, 1)
	assert.Equal(t, "alice", log.records[0].OwnerID)
}

func TestSubmitHandlerValidation(t *testing.T) {
	cases := map[string]string{
		"missing subject":  `{"answers": ["A"], "questions": [{"correctAnswer": "A"}]}`,
		"length mismatch":  `{"subject": "ml", "answers": ["A"], "questions": [{"correctAnswer": "A"}, {"correctAnswer": "B"}]}`,
		"no questions":     `{"subject": "ml", "answers": [], "questions": []}`,
		"malformed json":   `{"subject": `,
		"missing question": `{"subject": "ml", "answers": ["A"]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			log := newMemoryLog()
			rec := doJSON(newAssessmentRouter(log, "alice"), http.MethodPost, "/api/assessment", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_FAILURE")
			assert.Empty(t, log.records)
		})
	}
}

func TestListAndGetHandlers(t *testing.T) {
	log := newMemoryLog()
	alice := newAssessmentRouter(log, "alice")
	bob := newAssessmentRouter(log, "bob")

	submit := `{"subject": "cd", "answers": ["A"], "questions": [{"correctAnswer": "A"}]}`
	require.Equal(t, http.StatusOK, doJSON(alice, http.MethodPost, "/api/assessment", submit).Code)
	require.Equal(t, http.StatusOK, doJSON(bob, http.MethodPost, "/api/assessment", submit).Code)

	rec := doJSON(alice, http.MethodGet, "/api/assessments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summaries []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "rec-1", summaries[0]["id"])
	assert.NotContains(t, summaries[0], "answers")

	rec = doJSON(alice, http.MethodGet, "/api/assessments/rec-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var full map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &full))
	assert.Equal(t, "alice", full["ownerId"])
	assert.Len(t, full["answers"], 1)

	// 他人の記録は 404
	rec = doJSON(alice, http.MethodGet, "/api/assessments/rec-2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Assessment not found")
}

func TestListHandlerEmptyIsArray(t *testing.T) {
	rec := doJSON(newAssessmentRouter(newMemoryLog(), "nobody"), http.MethodGet, "/api/assessments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSubmitHandlerStoreFailure(t *testing.T) {
	log := newMemoryLog()
	log.err = apperrors.Wrap(apperrors.ErrUnavailable, "Failed to save assessment", errors.New("pq: connection reset"))

	rec := doJSON(newAssessmentRouter(log, "alice"), http.MethodPost, "/api/assessment",
		`{"subject": "ml", "answers": ["A"], "questions": [{"correctAnswer": "A"}]}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to save assessment")
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
