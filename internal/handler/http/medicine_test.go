// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtrack/medtrack/internal/service"
	"github.com/medtrack/medtrack/internal/store"
	"github.com/medtrack/medtrack/models"
)

func TestDashboard_ListsOwnedMedicines(t *testing.T) {
	want := []models.Medicine{
		{MedicineID: 1, UserID: 7, Name: "Paracetamol", Dosage: "500mg", ExpiryDate: "2027-01-31"},
	}

	medicines := &mockMedicineService{
		listFn: func(_ context.Context, userID int64) ([]models.Medicine, error) {
			assert.Equal(t, int64(7), userID)
			return want, nil
		},
	}

	h, sessions, renderer := newTestHandler(t, &service.Services{MedicineService: medicines})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(signIn(t, sessions, 7, "john"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dashboard", renderer.lastName)
	assert.Equal(t, want, renderer.lastPage.Data)
}

func TestAddMedicine_Success(t *testing.T) {
	medicines := &mockMedicineService{
		addFn: func(_ context.Context, userID int64, name, dosage, expiryDate string) (models.Medicine, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, "Metformin", name)
			assert.Equal(t, "850mg", dosage)
			assert.Equal(t, "2026-12-01", expiryDate)
			return models.Medicine{MedicineID: 11, UserID: userID, Name: name}, nil
		},
	}

	h, sessions, _ := newTestHandler(t, &service.Services{MedicineService: medicines})
	router := h.Init()

	form := url.Values{
		"name":        {"Metformin"},
		"dosage":      {"850mg"},
		"expiry_date": {"2026-12-01"},
	}
	req := postForm("/add_medicine", form)
	req.AddCookie(signIn(t, sessions, 7, "john"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	flash := flashFrom(t, rec)
	require.NotNil(t, flash)
	assert.Equal(t, flashSuccess, flash.Category)
	assert.Equal(t, "Medicine added successfully!", flash.Message)
}

func TestAddMedicine_MissingFields(t *testing.T) {
	medicines := &mockMedicineService{
		addFn: func(_ context.Context, _ int64, _, _, _ string) (models.Medicine, error) {
			return models.Medicine{}, service.ErrInvalidDataProvided
		},
	}

	h, sessions, _ := newTestHandler(t, &service.Services{MedicineService: medicines})
	router := h.Init()

	req := postForm("/add_medicine", url.Values{"name": {"Metformin"}})
	req.AddCookie(signIn(t, sessions, 7, "john"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/add_medicine", rec.Header().Get("Location"))

	flash := flashFrom(t, rec)
	require.NotNil(t, flash)
	assert.Equal(t, flashDanger, flash.Category)
}

func TestDeleteMedicine_Success(t *testing.T) {
	medicines := &mockMedicineService{
		deleteFn: func(_ context.Context, userID, medicineID int64) error {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, int64(11), medicineID)
			return nil
		},
	}

	h, sessions, _ := newTestHandler(t, &service.Services{MedicineService: medicines})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/delete_medicine/11", nil)
	req.AddCookie(signIn(t, sessions, 7, "john"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	flash := flashFrom(t, rec)
	require.NotNil(t, flash)
	assert.Equal(t, "Medicine deleted successfully!", flash.Message)
}

func TestDeleteMedicine_ForeignIDIsSilentNoOp(t *testing.T) {
	medicines := &mockMedicineService{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return store.ErrMedicineNotFound
		},
	}

	h, sessions, _ := newTestHandler(t, &service.Services{MedicineService: medicines})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/delete_medicine/999", nil)
	req.AddCookie(signIn(t, sessions, 7, "john"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// redirect with no flash and no error surfaced
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	assert.Nil(t, flashFrom(t, rec))
}

func TestDeleteMedicine_NonNumericIDRedirects(t *testing.T) {
	h, sessions, _ := newTestHandler(t, &service.Services{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/delete_medicine/abc", nil)
	req.AddCookie(signIn(t, sessions, 7, "john"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestDeleteMedicine_UnexpectedErrorIs500(t *testing.T) {
	medicines := &mockMedicineService{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return errors.New("connection reset")
		},
	}

	h, sessions, _ := newTestHandler(t, &service.Services{MedicineService: medicines})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/delete_medicine/11", nil)
	req.AddCookie(signIn(t, sessions, 7, "john"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
