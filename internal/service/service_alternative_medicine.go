// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/medtrack/medtrack/internal/logger"
	"github.com/medtrack/medtrack/internal/store"
	"github.com/medtrack/medtrack/models"
)

// alternativeMedicineService serves the WHO alternative medicine reference
// table. It is read-only and requires no authentication.
type alternativeMedicineService struct {
	alternativeRepository store.AlternativeMedicineRepository
	logger                *logger.Logger
}

// NewAlternativeMedicineService constructs an AlternativeMedicineService over
// the given repository.
func NewAlternativeMedicineService(alternativeRepository store.AlternativeMedicineRepository, logger *logger.Logger) AlternativeMedicineService {
	return &alternativeMedicineService{
		alternativeRepository: alternativeRepository,
		logger:                logger,
	}
}

func (s *alternativeMedicineService) ListAlternatives(ctx context.Context, condition string) ([]models.AlternativeMedicine, error) {
	alternatives, err := s.alternativeRepository.ListAlternativeMedicines(ctx, condition)
	if err != nil {
		return nil, fmt.Errorf("listing alternative medicines failed: %w", err)
	}

	return alternatives, nil
}
