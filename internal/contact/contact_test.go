package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/blackstone-contractors/website/internal/db"
)

func validForm() Form {
	return Form{
		Name:    "Dana Smith",
		Email:   "dana@example.com",
		Phone:   "(253) 555-0100",
		Service: "driveway",
		Message: "Replace a cracked two-car driveway.",
	}
}

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	assert.Nil(t, validForm().Validate())

	f := validForm()
	f.Service = ""
	assert.Nil(t, f.Validate(), "service is optional")
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Form)
		field string
	}{
		{"missing name", func(f *Form) { f.Name = "  " }, "name"},
		{"missing email", func(f *Form) { f.Email = "" }, "email"},
		{"bad email", func(f *Form) { f.Email = "dana@" }, "email"},
		{"display name email", func(f *Form) { f.Email = "Dana <dana@example.com>" }, "email"},
		{"no tld", func(f *Form) { f.Email = "dana@localhost" }, "email"},
		{"missing phone", func(f *Form) { f.Phone = "" }, "phone"},
		{"short phone", func(f *Form) { f.Phone = "555-0100" }, "phone"},
		{"unknown service", func(f *Form) { f.Service = "roofing" }, "service"},
		{"missing message", func(f *Form) { f.Message = "" }, "message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.edit(&f)
			errs := f.Validate()
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.field)
			assert.Len(t, errs, 1)
		})
	}
}

func TestFormFromValuesTrims(t *testing.T) {
	f := FormFromValues(url.Values{"name": {"  Dana "}, "service": {" patio"}})
	assert.Equal(t, "Dana", f.Name)
	assert.Equal(t, "patio", f.Service)
	assert.Equal(t, "Patio", f.ServiceLabel())
}

func TestPhoneDigits(t *testing.T) {
	assert.Equal(t, "2537667377", PhoneDigits("(253) 766-7377"))
}

func TestStoreSaveAndList(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	older := Inquiry{Form: validForm(), CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	newer := Inquiry{Form: validForm(), CreatedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	newer.Name = "Lee"

	_, err := store.Save(ctx, older)
	require.NoError(t, err)
	saved, err := store.Save(ctx, newer)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	list, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Lee", list[0].Name)
	assert.Equal(t, "Dana Smith", list[1].Name)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err = store.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestIntakeRejectsWithoutSaving(t *testing.T) {
	store := setupTestStore(t)
	in := NewIntake(store, zap.NewNop())

	f := validForm()
	f.Email = "nope"
	inq, errs, err := in.Submit(context.Background(), f, "10.0.0.1:5000")
	require.NoError(t, err)
	assert.Nil(t, inq)
	assert.Contains(t, errs, "email")

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestIntakeStores(t *testing.T) {
	store := setupTestStore(t)
	in := NewIntake(store, zap.NewNop())

	inq, errs, err := in.Submit(context.Background(), validForm(), "10.0.0.1:5000")
	require.NoError(t, err)
	require.Nil(t, errs)
	assert.NotEmpty(t, inq.ID)

	list, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, inq.ID, list[0].ID)
	assert.Equal(t, "10.0.0.1:5000", list[0].RemoteAddr)
}

func TestIntakeWithoutStore(t *testing.T) {
	in := NewIntake(nil, nil)
	inq, errs, err := in.Submit(context.Background(), validForm(), "")
	require.NoError(t, err)
	assert.Nil(t, errs)
	assert.NotEmpty(t, inq.ID)
}

func TestSubmitRoute(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, NewIntake(setupTestStore(t), nil), zap.NewNop())

	body, _ := json.Marshal(validForm())
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp submitResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.ID)

	f := validForm()
	f.Phone = "123"
	body, _ = json.Marshal(f)
	req = httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp = submitResponse{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp.Errors, "phone")

	req = httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader([]byte("{")))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
