package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap/zaptest"

	"github.com/and161185/moment-keeper/internal/errs"
	"github.com/and161185/moment-keeper/internal/model"
)

type fakeMomentStore struct {
	stored   []model.Moment // nil means nothing saved
	loadErr  error
	writeErr error

	lastFallback []model.Moment
	appended     []model.Moment
	replacedID   string
}

var _ MomentStore = (*fakeMomentStore)(nil)

func (f *fakeMomentStore) Load(_ context.Context, _ uuid.UUID, fallback []model.Moment) ([]model.Moment, error) {
	f.lastFallback = fallback
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.stored == nil {
		return append([]model.Moment(nil), fallback...), nil
	}
	return append([]model.Moment(nil), f.stored...), nil
}

func (f *fakeMomentStore) Get(ctx context.Context, owner uuid.UUID, id string, fallback []model.Moment) (model.Moment, error) {
	ms, err := f.Load(ctx, owner, fallback)
	if err != nil {
		return model.Moment{}, err
	}
	for _, m := range ms {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Moment{}, errs.ErrNotFound
}

func (f *fakeMomentStore) Append(_ context.Context, _ uuid.UUID, m model.Moment) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.appended = append(f.appended, m)
	f.stored = append(f.stored, m)
	return nil
}

func (f *fakeMomentStore) Replace(ctx context.Context, owner uuid.UUID, id string, m model.Moment, fallback []model.Moment) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	ms, err := f.Load(ctx, owner, fallback)
	if err != nil {
		return err
	}
	for i := range ms {
		if ms[i].ID == id {
			ms[i] = m
			f.stored = ms
			f.replacedID = id
			return nil
		}
	}
	return errs.ErrNotFound
}

var fixedNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func newMomentSvc(t *testing.T, st *fakeMomentStore) *MomentServiceImpl {
	t.Helper()
	return NewMomentService(st, zaptest.NewLogger(t), WithMomentClock(func() time.Time { return fixedNow }))
}

func validInput() MomentInput {
	return MomentInput{
		Title:       "Picnic",
		Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Description: "Sandwiches in the park",
		ImageURL:    "https://images.example.com/p.jpg",
		Tags:        []string{" park ", "food", "park", ""},
	}
}

func TestMomentService_List_DemoFallbackAndQuery(t *testing.T) {
	t.Parallel()
	st := &fakeMomentStore{}
	s := newMomentSvc(t, st)
	owner := uuid.Must(uuid.NewV4())

	all, err := s.List(context.Background(), owner, "", model.SortOldest)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 4 || all[0].ID != "1" || all[3].ID != "3" {
		t.Fatalf("unexpected demo order: %+v", all)
	}
	if len(st.lastFallback) != 4 {
		t.Fatalf("demo fallback not passed to store")
	}

	got, err := s.List(context.Background(), owner, "BEACH", model.SortNewest)
	if err != nil || len(got) != 1 || got[0].Title != "Beach Day" {
		t.Fatalf("query: got=%+v err=%v", got, err)
	}
}

func TestMomentService_Create_NormalizesAndAppends(t *testing.T) {
	t.Parallel()
	st := &fakeMomentStore{}
	s := newMomentSvc(t, st)
	owner := uuid.Must(uuid.NewV4())

	m, err := s.Create(context.Background(), owner, validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := uuid.FromString(m.ID); err != nil {
		t.Fatalf("generated id is not a uuid: %q", m.ID)
	}
	if strings.Join(m.Tags, "|") != "park|food" {
		t.Fatalf("tags not normalised: %q", m.Tags)
	}
	if len(st.appended) != 1 || st.appended[0].ID != m.ID {
		t.Fatalf("store not called with created moment")
	}
}

func TestMomentService_Create_DefaultsImageAndDate(t *testing.T) {
	t.Parallel()
	s := newMomentSvc(t, &fakeMomentStore{})
	in := validInput()
	in.ImageURL = ""
	in.Date = time.Time{}
	in.ID = "client-id"

	m, err := s.Create(context.Background(), uuid.Must(uuid.NewV4()), in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.ImageURL != DefaultImages[0] {
		t.Fatalf("image default: %q", m.ImageURL)
	}
	if !m.Date.Equal(fixedNow) {
		t.Fatalf("date default: %v", m.Date)
	}
	if m.ID != "client-id" {
		t.Fatalf("client id should be kept, got %q", m.ID)
	}
}

func TestMomentService_Create_Validation(t *testing.T) {
	t.Parallel()
	st := &fakeMomentStore{}
	s := newMomentSvc(t, st)
	owner := uuid.Must(uuid.NewV4())

	cases := map[string]func(*MomentInput){
		"no title":       func(in *MomentInput) { in.Title = "" },
		"blank title":    func(in *MomentInput) { in.Title = "   " },
		"no description": func(in *MomentInput) { in.Description = "" },
		"bad url":        func(in *MomentInput) { in.ImageURL = "not a url" },
		"long tag":       func(in *MomentInput) { in.Tags = []string{strings.Repeat("x", 65)} },
	}
	for name, mutate := range cases {
		in := validInput()
		mutate(&in)
		_, err := s.Create(context.Background(), owner, in)
		if !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("%s: want ErrValidation, got %v", name, err)
		}
	}
	if _, err := s.Create(context.Background(), uuid.Nil, validInput()); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want ErrValidation on empty owner, got %v", err)
	}
	if len(st.appended) != 0 {
		t.Fatalf("invalid input reached the store")
	}
}

func TestMomentService_Create_MessageNamesField(t *testing.T) {
	t.Parallel()
	s := newMomentSvc(t, &fakeMomentStore{})
	in := validInput()
	in.Title = ""
	_, err := s.Create(context.Background(), uuid.Must(uuid.NewV4()), in)
	if err == nil || !strings.Contains(err.Error(), "title is required") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestMomentService_Update(t *testing.T) {
	t.Parallel()
	st := &fakeMomentStore{}
	s := newMomentSvc(t, st)
	owner := uuid.Must(uuid.NewV4())

	in := validInput()
	in.Title = "Our First Date (edited)"
	m, err := s.Update(context.Background(), owner, "1", in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if m.ID != "1" || st.replacedID != "1" {
		t.Fatalf("id must be preserved: %q %q", m.ID, st.replacedID)
	}
	if len(st.stored) != 4 || st.stored[0].Title != "Our First Date (edited)" {
		t.Fatalf("replace should persist the demo collection with the edit: %+v", st.stored)
	}

	if _, err := s.Update(context.Background(), owner, "missing", validInput()); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	in.ID = "2"
	if _, err := s.Update(context.Background(), owner, "1", in); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want ErrValidation on id change, got %v", err)
	}
}

func TestMomentService_StoreErrorsPropagate(t *testing.T) {
	t.Parallel()
	mal := &errs.MalformedStoreError{Key: "moments", Err: errors.New("bad json")}
	st := &fakeMomentStore{loadErr: mal}
	s := newMomentSvc(t, st)
	owner := uuid.Must(uuid.NewV4())

	if _, err := s.List(context.Background(), owner, "", model.SortNewest); !errors.Is(err, errs.ErrMalformedStore) {
		t.Fatalf("List: want malformed, got %v", err)
	}
	if _, err := s.Get(context.Background(), owner, "1"); !errors.Is(err, errs.ErrMalformedStore) {
		t.Fatalf("Get: want malformed, got %v", err)
	}
	if _, err := s.Recent(context.Background(), owner, 3); !errors.Is(err, errs.ErrMalformedStore) {
		t.Fatalf("Recent: want malformed, got %v", err)
	}
}

func TestMomentService_Recent(t *testing.T) {
	t.Parallel()
	s := newMomentSvc(t, &fakeMomentStore{})
	got, err := s.Recent(context.Background(), uuid.Must(uuid.NewV4()), HomeRecent)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 || got[0].ID != "1" || got[2].ID != "3" {
		t.Fatalf("want first three in collection order, got %+v", got)
	}
}

func TestNormalizeTags(t *testing.T) {
	t.Parallel()
	got := NormalizeTags([]string{"a", " a", "B", "", "  ", "b", "B "})
	if strings.Join(got, ",") != "a,B,b" {
		t.Fatalf("got %q", got)
	}
	if NormalizeTags(nil) == nil {
		t.Fatalf("want non-nil empty slice")
	}
}

func TestDemoMoments_FreshCopies(t *testing.T) {
	t.Parallel()
	a := DemoMoments()
	a[0].Tags[0] = "changed"
	if DemoMoments()[0].Tags[0] != "first date" {
		t.Fatalf("demo collection must not be shared")
	}
}
