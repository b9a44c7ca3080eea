package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	pb "github.com/and161185/moment-keeper/gen/go/momentkeeper/v1"
	"github.com/and161185/moment-keeper/internal/errs"
	"github.com/and161185/moment-keeper/internal/model"
	"github.com/and161185/moment-keeper/internal/observability"
	"github.com/and161185/moment-keeper/internal/service"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeVerifier map[string]model.Identity

func (f fakeVerifier) Verify(_ context.Context, token string) (model.Identity, error) {
	if token == "provider-down" {
		return model.Identity{}, fmt.Errorf("%w: breaker is open", errs.ErrUnavailable)
	}
	id, ok := f[token]
	if !ok {
		return model.Identity{}, fmt.Errorf("%w: unknown token", errs.ErrUnauthorized)
	}
	return id, nil
}

type fakeMoments struct {
	items []model.Moment
	err   error
	owner uuid.UUID
}

func (f *fakeMoments) List(_ context.Context, owner uuid.UUID, q string, mode model.SortMode) ([]model.Moment, error) {
	f.owner = owner
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Moment
	for _, m := range f.items {
		if q == "" || strings.Contains(m.Title, q) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMoments) Get(_ context.Context, _ uuid.UUID, id string) (model.Moment, error) {
	for _, m := range f.items {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Moment{}, errs.ErrNotFound
}

func (f *fakeMoments) Create(_ context.Context, _ uuid.UUID, in service.MomentInput) (model.Moment, error) {
	if in.Title == "" {
		return model.Moment{}, errs.Validation("title is required")
	}
	for _, m := range f.items {
		if m.ID == in.ID {
			return model.Moment{}, errs.ErrAlreadyExists
		}
	}
	m := model.Moment{ID: in.ID, Title: in.Title, Date: in.Date, Description: in.Description, ImageURL: in.ImageURL, Tags: in.Tags}
	f.items = append(f.items, m)
	return m, nil
}

func (f *fakeMoments) Update(_ context.Context, _ uuid.UUID, id string, in service.MomentInput) (model.Moment, error) {
	for i, m := range f.items {
		if m.ID == id {
			m.Title = in.Title
			f.items[i] = m
			return m, nil
		}
	}
	return model.Moment{}, errs.ErrNotFound
}

func (f *fakeMoments) Recent(_ context.Context, _ uuid.UUID, n int) ([]model.Moment, error) {
	return f.items[:min(n, len(f.items))], nil
}

type fakeAnniv struct {
	setting model.AnniversarySetting
	saved   bool
}

func (f *fakeAnniv) Setting(context.Context, uuid.UUID) (model.AnniversarySetting, bool, error) {
	return f.setting, f.saved, nil
}

func (f *fakeAnniv) View(context.Context, uuid.UUID) (model.AnniversaryView, error) {
	return service.BuildView(f.setting, f.saved, testNow), nil
}

func (f *fakeAnniv) Save(_ context.Context, _ uuid.UUID, in service.AnniversaryInput) (model.AnniversaryView, error) {
	if in.Date.IsZero() {
		return model.AnniversaryView{}, errs.Validation("date is required")
	}
	f.setting, f.saved = model.AnniversarySetting{Date: in.Date, Name: in.Name}, true
	return service.BuildView(f.setting, true, testNow), nil
}

func (f *fakeAnniv) Home(context.Context, uuid.UUID) (model.Home, error) {
	return model.Home{Anniversary: f.setting, Saved: f.saved}, nil
}

type fixture struct {
	h       http.Handler
	moments *fakeMoments
	anniv   *fakeAnniv
	metrics *observability.Collector
	user    model.Identity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		moments: &fakeMoments{items: []model.Moment{
			{ID: "1", Title: "Beach", Date: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC), Description: "sun"},
		}},
		anniv: &fakeAnniv{setting: model.AnniversarySetting{
			Date: time.Date(2020, 6, 12, 0, 0, 0, 0, time.UTC), Name: "Us",
		}, saved: true},
		metrics: observability.NewCollector("mk"),
		user:    model.Identity{ID: uuid.Must(uuid.NewV4()), Email: "a@b.c"},
	}
	f.h = NewRouter(Deps{
		Moments:     f.moments,
		Anniversary: f.anniv,
		Verifier:    fakeVerifier{"good": f.user},
		Metrics:     f.metrics,
		Logger:      zaptest.NewLogger(t),
		CORSOrigins: []string{"http://localhost:5173"},
	})
	return f
}

func (f *fixture) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T proto.Message](t *testing.T, rec *httptest.ResponseRecorder, v T) T {
	t.Helper()
	require.NoError(t, protojson.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
	return v
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var v errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), rec.Body.String())
	return v.Error
}

func TestRouter_Moments(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/moments?q=Bea&sort=oldest", "", "good")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), `"date":"2023-07-01T00:00:00Z"`)
	list := decodeBody(t, rec, &pb.ListMomentsResponse{})
	require.Len(t, list.GetMoments(), 1)
	require.Equal(t, time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC), list.GetMoments()[0].GetDate().AsTime())
	require.Equal(t, f.user.ID, f.moments.owner)

	rec = f.do(t, http.MethodPost, "/api/v1/moments",
		`{"id":"2","title":"Paris","description":"d","date":"2024-06-12T00:00:00Z","imageUrl":"https://example.com/p.jpg","tags":["trip"]}`, "good")
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec, &pb.MomentResponse{})
	require.Equal(t, "Paris", created.GetMoment().GetTitle())
	require.Equal(t, []string{"trip"}, created.GetMoment().GetTags())
	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.MomentsCreated))

	rec = f.do(t, http.MethodGet, "/api/v1/moments/2", "", "good")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPut, "/api/v1/moments/2", `{"title":"Paris again","description":"d"}`, "good")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Paris again", decodeBody(t, rec, &pb.MomentResponse{}).GetMoment().GetTitle())
}

func TestRouter_ErrorStatuses(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	cases := []struct {
		name, method, path, body string
		want                     int
	}{
		{"unknown moment", http.MethodGet, "/api/v1/moments/nope", "", http.StatusNotFound},
		{"update unknown", http.MethodPut, "/api/v1/moments/nope", `{"title":"t"}`, http.StatusNotFound},
		{"validation", http.MethodPost, "/api/v1/moments", `{"description":"d"}`, http.StatusBadRequest},
		{"bad json", http.MethodPost, "/api/v1/moments", `{`, http.StatusBadRequest},
		{"bad date", http.MethodPost, "/api/v1/moments", `{"title":"t","date":"soon"}`, http.StatusBadRequest},
		{"duplicate id", http.MethodPost, "/api/v1/moments", `{"id":"1","title":"t","description":"d"}`, http.StatusConflict},
		{"bad sort", http.MethodGet, "/api/v1/moments?sort=random", "", http.StatusBadRequest},
		{"anniversary without date", http.MethodPut, "/api/v1/anniversary", `{"name":"x"}`, http.StatusBadRequest},
		{"unknown route", http.MethodGet, "/api/v1/nothing", "", http.StatusNotFound},
		{"method not allowed", http.MethodDelete, "/api/v1/moments/1", "", http.StatusMethodNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := f.do(t, tc.method, tc.path, tc.body, "good")
			require.Equal(t, tc.want, rec.Code, rec.Body.String())
			require.NotEmpty(t, decodeError(t, rec))
		})
	}
}

func TestRouter_MalformedAndInternal(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.moments.err = &errs.MalformedStoreError{Key: "moments", Err: errors.New("eof")}
	rec := f.do(t, http.MethodGet, "/api/v1/moments", "", "good")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, decodeError(t, rec), "malformed")
	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.MalformedReads))

	f.moments.err = errors.New("dial tcp: refused")
	rec = f.do(t, http.MethodGet, "/api/v1/moments", "", "good")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "dial tcp")
}

func TestRouter_Auth(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	for _, tok := range []string{"", "forged"} {
		rec := f.do(t, http.MethodGet, "/api/v1/home", "", tok)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := f.do(t, http.MethodGet, "/api/v1/home", "", "provider-down")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, decodeError(t, rec), "unavailable")

	rec = f.do(t, http.MethodGet, "/api/v1/me", "", "good")
	require.Equal(t, http.StatusOK, rec.Code)
	me := decodeBody(t, rec, &pb.WhoAmIResponse{})
	require.Equal(t, f.user.ID.String(), me.GetUserId())
	require.Equal(t, "a@b.c", me.GetEmail())

	rec = f.do(t, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Anniversary(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/anniversary", "", "good")
	require.Equal(t, http.StatusOK, rec.Code)
	v := decodeBody(t, rec, &pb.AnniversaryView{})
	require.Equal(t, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), v.GetNextOccurrence().AsTime())
	require.EqualValues(t, 3, v.GetYearsElapsed())
	require.True(t, proto.Equal(&pb.Countdown{Days: 10, Hours: 12}, v.GetCountdown()), v.GetCountdown().String())

	rec = f.do(t, http.MethodPut, "/api/v1/anniversary", `{"date":"2021-03-04T00:00:00Z","name":"First date"}`, "good")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "First date", decodeBody(t, rec, &pb.AnniversaryView{}).GetAnniversary().GetName())

	rec = f.do(t, http.MethodGet, "/api/v1/home", "", "good")
	require.Equal(t, http.StatusOK, rec.Code)
	home := decodeBody(t, rec, &pb.HomeResponse{})
	require.Equal(t, time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), home.GetAnniversary().GetDate().AsTime())
}

func TestRouter_MetricsAndCORS(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.do(t, http.MethodGet, "/api/v1/moments/1", "", "good")
	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Requests.WithLabelValues("http", "GET /api/v1/moments/{id}", "200")))

	rec := f.do(t, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "mk_requests_total")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/moments", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	out := httptest.NewRecorder()
	f.h.ServeHTTP(out, req)
	require.Equal(t, "http://localhost:5173", out.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RecoversPanics(t *testing.T) {
	t.Parallel()
	h := recoverer(zaptest.NewLogger(t))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
