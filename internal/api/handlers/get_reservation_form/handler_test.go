package get_reservation_form

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CabinReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
	getReservationForm "github.com/m04kA/SMC-CabinReservationService/internal/usecase/get_reservation_form"
	"github.com/m04kA/SMC-CabinReservationService/pkg/logger"
)

type fakeUseCase struct {
	resp *getReservationForm.Response
	err  error
	got  *getReservationForm.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getReservationForm.Request) (*getReservationForm.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/cabins/{cabinId}/reservation-form", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.HeaderUserID, "42")
	req.Header.Set(middleware.HeaderUserName, "Jonas")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Form(t *testing.T) {
	from := time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 3)
	uc := &fakeUseCase{resp: &getReservationForm.Response{
		Cabin: domain.Cabin{
			ID:           7,
			Name:         "001",
			MaxCapacity:  2,
			RegularPrice: domain.MoneyFromMajor(100),
			Discount:     domain.MoneyFromMajor(20),
		},
		User:         domain.User{ID: 42, Name: "Jonas"},
		Range:        domain.DateRange{From: &from, To: &to},
		NumNights:    3,
		CabinPrice:   domain.MoneyFromMajor(240),
		GuestOptions: []domain.GuestOption{{Value: 1, Label: "1 guest"}, {Value: 2, Label: "2 guests"}},
		CanSubmit:    true,
		Actions:      []domain.SubmitAction{domain.ActionPayOffline, domain.ActionPayOnline},
	}}

	rec := serve(uc, "/cabins/7/reservation-form")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ReservationFormResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(7), resp.Cabin.ID)
	assert.Equal(t, 100.0, resp.Cabin.RegularPrice)
	assert.Equal(t, 240.0, resp.CabinPrice)
	assert.Equal(t, 3, resp.NumNights)
	require.NotNil(t, resp.Range.From)
	assert.Equal(t, "2026-11-01", *resp.Range.From)
	assert.Equal(t, "2026-11-04", *resp.Range.To)
	assert.Len(t, resp.GuestOptions, 2)
	assert.Equal(t, []string{"payOffline", "payOnline"}, resp.Actions)
	assert.True(t, resp.CanSubmit)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(7), uc.got.CabinID)
	assert.Equal(t, int64(42), uc.got.User.ID)
	assert.Equal(t, "Jonas", uc.got.User.Name)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
	}{
		{name: "not a number", path: "/cabins/abc/reservation-form", wantStatus: http.StatusBadRequest},
		{name: "negative id", path: "/cabins/-3/reservation-form", wantStatus: http.StatusBadRequest},
		{name: "cabin not found", path: "/cabins/7/reservation-form", err: getReservationForm.ErrCabinNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid input", path: "/cabins/7/reservation-form", err: getReservationForm.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", path: "/cabins/7/reservation-form", err: errors.New("redis down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.path)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
