package round

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dto "satta_backend/internal/api/dto/round"
	"satta_backend/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	report     *model.RoundReport
	err        error
	state      model.PatternState
	journal    []model.JournalEntry
	journalErr error
	gotLimit   int
	rebuildErr error
}

func (f *fakeService) Generate(context.Context) (*model.RoundReport, error) {
	return f.report, f.err
}

func (f *fakeService) Preview(context.Context) (*model.RoundReport, error) {
	return f.report, f.err
}

func (f *fakeService) Tracker() model.PatternState { return f.state }

func (f *fakeService) RebuildTracker(context.Context) (model.PatternState, error) {
	return f.state, f.rebuildErr
}

func (f *fakeService) Journal(_ context.Context, limit int) ([]model.JournalEntry, error) {
	f.gotLimit = limit
	if limit > 200 {
		return nil, fmt.Errorf("%w: must be in 1..200", model.ErrInvalidLimit)
	}
	return f.journal, f.journalErr
}

func newRouter(s *fakeService) http.Handler {
	h := NewHandler(HandlerDeps{Serv: s})
	r := chi.NewRouter()
	r.Get("/", h.Generate)
	r.Get("/analysis", h.Analysis)
	r.Get("/tracker", h.Tracker)
	r.Get("/journal", h.Journal)
	r.Post("/admin/tracker/rebuild", h.RebuildTracker)
	return r
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func sampleReport() *model.RoundReport {
	return &model.RoundReport{
		Analysis: model.Analysis{TotalResults: 10, HotNumbers: []int{1}, ColdNumbers: []int{9}},
		Tracker:  model.PatternState{CurrentStreak: 3, StreakType: model.RangeBig, RecentNumbers: []int{5, 6, 7}},
		Weights:  [10]float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1},
		Outcome: &model.Outcome{
			ID:        "abc",
			Number:    7,
			Type:      model.RangeBig,
			Color:     model.ColorGreen,
			Group:     model.GroupFiveNine,
			Timestamp: time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC),
			Weights:   [10]float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1},
		},
	}
}

func TestGenerate(t *testing.T) {
	rec := do(t, newRouter(&fakeService{report: sampleReport()}), http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.OutcomeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 7, body.ResultNumber)
	assert.Equal(t, "BIG", body.Type)
	assert.Equal(t, "GREEN", body.Color)
	assert.Equal(t, "5-9", body.Group)
	assert.Equal(t, "2026-10-18 08:00:00", body.Timestamp)
	assert.Len(t, body.Weights, 10)
	require.NotNil(t, body.Streak)
	assert.Equal(t, 3, body.Streak.Length)
}

func TestGenerate_Errors(t *testing.T) {
	malformed := fmt.Errorf("load: %w", &model.MalformedRecordError{RecordID: "x", Reason: "timestamp is missing"})

	rec := do(t, newRouter(&fakeService{err: malformed}), http.MethodGet, "/")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, newRouter(&fakeService{err: errors.New("db down")}), http.MethodGet, "/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestAnalysis(t *testing.T) {
	rec := do(t, newRouter(&fakeService{report: sampleReport()}), http.MethodGet, "/analysis")
	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 10, body.TotalResults)
	assert.Equal(t, []int{1}, body.HotNumbers)
	assert.Equal(t, []int{5, 6, 7}, body.Tracker.RecentNumbers)
	assert.Len(t, body.FinalWeights, 10)
}

func TestTracker(t *testing.T) {
	s := &fakeService{state: model.PatternState{
		CurrentStreak:     2,
		StreakType:        model.RangeSmall,
		TrapPatternCounts: map[model.TrapPattern]int{model.TrapBBS: 1},
	}}
	rec := do(t, newRouter(s), http.MethodGet, "/tracker")
	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.TrackerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "SMALL", body.StreakType)
	assert.Equal(t, 1, body.TrapPatterns["BBS"])
}

func TestJournal(t *testing.T) {
	s := &fakeService{journal: []model.JournalEntry{{OutcomeID: "a", ResultNumber: 3}}}
	r := newRouter(s)

	rec := do(t, r, http.MethodGet, "/journal")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultJournalLimit, s.gotLimit)

	var body dto.JournalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Entries, 1)
	assert.Equal(t, "a", body.Entries[0].OutcomeID)

	rec = do(t, r, http.MethodGet, "/journal?limit=5")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, s.gotLimit)

	rec = do(t, r, http.MethodGet, "/journal?limit=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodGet, "/journal?limit=1000")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJournal_StorageErrorIsHidden(t *testing.T) {
	s := &fakeService{journalErr: errors.New("sqlite: database is locked")}

	rec := do(t, newRouter(s), http.MethodGet, "/journal")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "sqlite")
}

func TestRebuildTracker(t *testing.T) {
	s := &fakeService{state: model.PatternState{Observed: 12}}
	rec := do(t, newRouter(s), http.MethodPost, "/admin/tracker/rebuild")
	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.TrackerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 12, body.Observed)

	s.rebuildErr = errors.New("boom")
	rec = do(t, newRouter(s), http.MethodPost, "/admin/tracker/rebuild")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
