// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/medtrack/medtrack/internal/logger"
	"github.com/medtrack/medtrack/internal/mock"
	"github.com/medtrack/medtrack/internal/store"
	"github.com/medtrack/medtrack/models"
)

func newTestMedicineSvc(t *testing.T, ctrl *gomock.Controller) (*medicineService, *mock.MockMedicineRepository) {
	t.Helper()

	mockMedicines := mock.NewMockMedicineRepository(ctrl)
	svc := NewMedicineService(mockMedicines, logger.NewLogger("test")).(*medicineService)

	return svc, mockMedicines
}

func TestMedicineService_ListMedicines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockMedicines := newTestMedicineSvc(t, ctrl)
	ctx := context.Background()

	want := []models.Medicine{
		{MedicineID: 1, UserID: 7, Name: "Paracetamol", Dosage: "500mg", ExpiryDate: "2027-01-31"},
		{MedicineID: 2, UserID: 7, Name: "Cetirizine", Dosage: "10mg", ExpiryDate: "2026-11-30"},
	}

	mockMedicines.EXPECT().ListMedicinesByOwner(ctx, int64(7)).Return(want, nil)

	got, err := svc.ListMedicines(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMedicineService_AddMedicine_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockMedicines := newTestMedicineSvc(t, ctrl)
	ctx := context.Background()

	mockMedicines.EXPECT().
		CreateMedicine(ctx, models.Medicine{
			UserID:     7,
			Name:       "Metformin",
			Dosage:     "850mg",
			ExpiryDate: "2026-12-01",
		}).
		DoAndReturn(func(_ context.Context, m models.Medicine) (models.Medicine, error) {
			m.MedicineID = 11
			return m, nil
		})

	created, err := svc.AddMedicine(ctx, 7, "Metformin", "850mg", "2026-12-01")
	require.NoError(t, err)

	assert.Equal(t, int64(11), created.MedicineID)
	assert.Equal(t, int64(7), created.UserID)
}

func TestMedicineService_AddMedicine_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestMedicineSvc(t, ctrl)

	_, err := svc.AddMedicine(context.Background(), 7, "", "850mg", "2026-12-01")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestMedicineService_DeleteMedicine_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockMedicines := newTestMedicineSvc(t, ctrl)
	ctx := context.Background()

	mockMedicines.EXPECT().DeleteMedicine(ctx, int64(11), int64(7)).Return(nil)

	assert.NoError(t, svc.DeleteMedicine(ctx, 7, 11))
}

func TestMedicineService_DeleteMedicine_NotFoundPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockMedicines := newTestMedicineSvc(t, ctrl)
	ctx := context.Background()

	mockMedicines.EXPECT().DeleteMedicine(ctx, int64(11), int64(99)).Return(store.ErrMedicineNotFound)

	err := svc.DeleteMedicine(ctx, 99, 11)
	assert.ErrorIs(t, err, store.ErrMedicineNotFound)
}

func TestMedicineService_ListMedicines_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockMedicines := newTestMedicineSvc(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("connection reset")
	mockMedicines.EXPECT().ListMedicinesByOwner(ctx, int64(7)).Return(nil, dbErr)

	_, err := svc.ListMedicines(ctx, 7)
	assert.ErrorIs(t, err, dbErr)
}
