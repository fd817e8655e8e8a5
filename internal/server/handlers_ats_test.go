package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/db"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

const scorableDocument = `{
	"personalInfo": {
		"firstName": "Arjun",
		"lastName": "Mehta",
		"email": "arjun.mehta@example.com",
		"summary": "Backend engineer building scalable microservices in Go and Python on AWS."
	},
	"experience": [{
		"company": "Razorpay",
		"position": "Software Engineer",
		"startDate": "2021-06",
		"current": true,
		"description": "developed payment APIs in Go\nreduced latency by 40% across 12 services"
	}],
	"education": [{"institution": "IIT Bombay", "degree": "B.Tech", "field": "Computer Science"}],
	"skills": [
		{"name": "Go", "level": "Expert"},
		{"name": "Python", "level": "Advanced"},
		{"name": "AWS", "level": "Intermediate"}
	]
}`

func scoreBody(resumeID string) string {
	if resumeID == "" {
		return fmt.Sprintf(`{"document": %s}`, scorableDocument)
	}
	return fmt.Sprintf(`{"resume_id": %q, "document": %s}`, resumeID, scorableDocument)
}

func TestScoreEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodPost, "/v1/ats/score", scoreBody(""), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.ScoreResponse
	decodeBody(t, w, &resp)
	require.NotNil(t, resp.Score)
	assert.False(t, resp.InsufficientData)
	assert.False(t, resp.Cached)
	assert.Empty(t, resp.HistoryID, "no resume_id means nothing is recorded")
	assert.Equal(t, types.IndustrySoftware, resp.Score.Industry)
	assert.True(t, resp.Score.LastUpdated.Equal(testNow))
	assert.GreaterOrEqual(t, resp.Score.Overall, 0)
	assert.LessOrEqual(t, resp.Score.Overall, 100)
}

func TestScoreEndpoint_PremiumAddsInstitutionBonus(t *testing.T) {
	s := newTestServer(t)

	var free, premium types.ScoreResponse
	decodeBody(t, do(t, s, http.MethodPost, "/v1/ats/score", scoreBody(""), freeToken(t)), &free)
	decodeBody(t, do(t, s, http.MethodPost, "/v1/ats/score", scoreBody(""), premiumToken(t)), &premium)

	require.NotNil(t, free.Score)
	require.NotNil(t, premium.Score)
	assert.GreaterOrEqual(t, premium.Score.Breakdown.Keywords, free.Score.Breakdown.Keywords)
	assert.GreaterOrEqual(t, premium.Score.Overall, free.Score.Overall)
	require.NotNil(t, premium.Score.Institution)
	assert.Equal(t, types.InstitutionIIT, *premium.Score.Institution)
}

func TestScoreEndpoint_InsufficientData(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodPost, "/v1/ats/score", `{"resume_id":"r1","document":{"personalInfo":{"firstName":"Asha"}}}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.ScoreResponse
	decodeBody(t, w, &resp)
	assert.Nil(t, resp.Score)
	assert.True(t, resp.InsufficientData)
	assert.Empty(t, resp.HistoryID)
	assert.Contains(t, w.Body.String(), `"score":null`)
}

func TestScoreEndpoint_UsesCache(t *testing.T) {
	store := newMemoryCache()
	s := newTestServer(t, func(c *Config) { c.Cache = store })

	var first, second types.ScoreResponse
	decodeBody(t, do(t, s, http.MethodPost, "/v1/ats/score", scoreBody(""), ""), &first)
	decodeBody(t, do(t, s, http.MethodPost, "/v1/ats/score", scoreBody(""), ""), &second)

	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Score.Overall, second.Score.Overall)
	assert.Equal(t, 1, store.len())

	// Premium scores are cached separately.
	var premium types.ScoreResponse
	decodeBody(t, do(t, s, http.MethodPost, "/v1/ats/score", scoreBody(""), premiumToken(t)), &premium)
	assert.False(t, premium.Cached)
	assert.Equal(t, 2, store.len())
}

func TestScoreEndpoint_CacheHitStampsCurrentTime(t *testing.T) {
	history := &memoryHistory{}
	store := newMemoryCache()
	now := testNow
	s := newTestServer(t, func(c *Config) {
		c.History = history
		c.Cache = store
		c.Now = func() time.Time { return now }
	})

	var first, second types.ScoreResponse
	decodeBody(t, do(t, s, http.MethodPost, "/v1/ats/score", scoreBody("resume-7"), ""), &first)
	now = testNow.Add(48 * time.Hour)
	decodeBody(t, do(t, s, http.MethodPost, "/v1/ats/score", scoreBody("resume-7"), ""), &second)

	require.True(t, second.Cached)
	assert.True(t, first.Score.LastUpdated.Equal(testNow))
	assert.True(t, second.Score.LastUpdated.Equal(now), "got %s", second.Score.LastUpdated)

	records, err := history.ListScores(context.Background(), "resume-7", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records[0].CreatedAt.Equal(now))
	assert.True(t, records[1].CreatedAt.Equal(testNow))

	// The cached entry itself is untouched.
	for _, cached := range store.scores {
		assert.True(t, cached.LastUpdated.Equal(testNow))
	}
}

func TestScoreEndpoint_CacheErrorStillScores(t *testing.T) {
	store := newMemoryCache()
	store.getErr = errors.New("redis down")
	s := newTestServer(t, func(c *Config) { c.Cache = store })

	w := do(t, s, http.MethodPost, "/v1/ats/score", scoreBody(""), "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.ScoreResponse
	decodeBody(t, w, &resp)
	assert.NotNil(t, resp.Score)
	assert.False(t, resp.Cached)
}

func TestScoreEndpoint_RecordsHistory(t *testing.T) {
	history := &memoryHistory{}
	s := newTestServer(t, func(c *Config) { c.History = history })

	w := do(t, s, http.MethodPost, "/v1/ats/score", scoreBody("resume-42"), premiumToken(t))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.ScoreResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "resume-42", resp.ResumeID)
	assert.NotEmpty(t, resp.HistoryID)

	require.Len(t, history.records, 1)
	assert.Equal(t, "resume-42", history.records[0].ResumeID)
	assert.True(t, history.records[0].Premium)
	assert.Equal(t, resp.Score.Overall, history.records[0].Overall)
}

func TestScoreEndpoint_HistoryFailureStillReturnsScore(t *testing.T) {
	history := &memoryHistory{saveErr: errors.New("db down")}
	s := newTestServer(t, func(c *Config) { c.History = history })

	w := do(t, s, http.MethodPost, "/v1/ats/score", scoreBody("resume-42"), "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.ScoreResponse
	decodeBody(t, w, &resp)
	assert.NotNil(t, resp.Score)
	assert.Empty(t, resp.HistoryID)
}

func TestScoreEndpoint_BadRequests(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"invalid JSON", `{"document":`, "invalid JSON"},
		{"missing document", `{"resume_id":"r1"}`, "document is required"},
		{"null document", `{"document":null}`, "document is required"},
		{"schema violation", `{"document":{"personalInfo":{},"skills":[{"name":"Go","level":"Guru"}]}}`, "resume does not match schema"},
		{"missing personalInfo", `{"document":{"skills":[]}}`, "resume does not match schema"},
		{"bad resume id", `{"resume_id":"../etc","document":{"personalInfo":{}}}`, "ResumeID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/v1/ats/score", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]string
			decodeBody(t, w, &resp)
			assert.Contains(t, resp["error"], tt.wantErr)
		})
	}
}

func TestScoreEndpoint_BodyTooLarge(t *testing.T) {
	s := newTestServer(t)
	huge := `{"document":{"personalInfo":{"summary":"` + strings.Repeat("a", MaxRequestBytes) + `"}}}`

	w := do(t, s, http.MethodPost, "/v1/ats/score", huge, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "exceeds")
}

func TestAutoFixEndpoint(t *testing.T) {
	s := newTestServer(t)
	body := `{"document":{
		"personalInfo":{"firstName":"Asha","email":"asha@example.com"},
		"experience":[{"company":"Acme","position":"Analyst","description":"responsible for reports"}]
	}}`

	w := do(t, s, http.MethodPost, "/v1/ats/autofix", body, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.AutoFixResponse
	decodeBody(t, w, &resp)
	require.NotNil(t, resp.Fixes)
	assert.Equal(t, resp.Fixes.Fields(), resp.Fields)
	assert.Contains(t, resp.Fields, "phone")
	assert.Contains(t, resp.Fields, "location")
}

func TestAutoFixEndpoint_EmptyDocument(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodPost, "/v1/ats/autofix", `{"document":{"personalInfo":{}}}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.AutoFixResponse
	decodeBody(t, w, &resp)
	assert.True(t, resp.Fixes.IsEmpty())
	assert.Equal(t, []string{}, resp.Fields)
}

func TestAnalysisEndpoint_RequiresPremium(t *testing.T) {
	s := newTestServer(t)

	for _, token := range []string{"", freeToken(t)} {
		w := do(t, s, http.MethodPost, "/v1/ats/analysis", scoreBody(""), token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "requires a premium token")
	}
}

func TestAnalysisEndpoint_Premium(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodPost, "/v1/ats/analysis", scoreBody(""), premiumToken(t))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.AnalysisResponse
	decodeBody(t, w, &resp)
	require.NotNil(t, resp.Analysis)
	assert.False(t, resp.InsufficientData)
	assert.Equal(t, types.IndustrySoftware, resp.Analysis.Industry)
	assert.NotNil(t, resp.Analysis.FoundKeywords)
}

func TestAnalysisEndpoint_InsufficientData(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodPost, "/v1/ats/analysis", `{"document":{"personalInfo":{}}}`, premiumToken(t))
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.AnalysisResponse
	decodeBody(t, w, &resp)
	assert.Nil(t, resp.Analysis)
	assert.True(t, resp.InsufficientData)
}

func TestListScoresEndpoint(t *testing.T) {
	history := &memoryHistory{}
	s := newTestServer(t, func(c *Config) { c.History = history })

	for i := 0; i < 3; i++ {
		w := do(t, s, http.MethodPost, "/v1/ats/score", scoreBody("resume-7"), "")
		require.Equal(t, http.StatusOK, w.Code)
	}
	do(t, s, http.MethodPost, "/v1/ats/score", scoreBody("other"), "")

	w := do(t, s, http.MethodGet, "/v1/resumes/resume-7/scores?limit=2", "", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		ResumeID string           `json:"resume_id"`
		Scores   []db.ScoreRecord `json:"scores"`
		Count    int              `json:"count"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "resume-7", resp.ResumeID)
	assert.Equal(t, 2, resp.Count)
	for _, rec := range resp.Scores {
		assert.Equal(t, "resume-7", rec.ResumeID)
	}
}

func TestListScoresEndpoint_Empty(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodGet, "/v1/resumes/nothing-here/scores", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"scores":[]`)
}

func TestListScoresEndpoint_Errors(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/v1/resumes/resume-7/scores?limit=abc", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodGet, "/v1/resumes/resume-7/scores?limit=-1", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodGet, "/v1/resumes/bad%20id/scores", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListScoresEndpoint_NoHistory(t *testing.T) {
	s := newTestServer(t, func(c *Config) { c.History = nil })
	w := do(t, s, http.MethodGet, "/v1/resumes/resume-7/scores", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
