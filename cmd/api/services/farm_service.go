package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/TheKalyaniMohite/TableGrapeAgent/cmd/api/dto"
	"github.com/TheKalyaniMohite/TableGrapeAgent/config"
	"github.com/TheKalyaniMohite/TableGrapeAgent/models"
	"github.com/TheKalyaniMohite/TableGrapeAgent/repositories"
)

type FarmService struct {
	farms *repositories.FarmRepository
}

func NewFarmService(farms *repositories.FarmRepository) *FarmService {
	return &FarmService{farms: farms}
}

// Create stores a new farm. An empty name defaults to "My Farm".
func (s *FarmService) Create(ctx context.Context, req dto.FarmCreateRequestDTO) (dto.FarmResponseDTO, *ChatError) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "My Farm"
	}
	lang := req.PreferredLanguage
	if lang == "" {
		lang = config.GetConfig().Chat.DefaultLanguage
	}
	if lang == "" {
		lang = "en"
	}

	farm := &models.Farm{
		Name:              name,
		Lat:               req.Lat,
		Lon:               req.Lon,
		CountryCode:       req.CountryCode,
		PreferredLanguage: lang,
	}
	if err := s.farms.Insert(ctx, farm); err != nil {
		return dto.FarmResponseDTO{}, &ChatError{StatusCode: http.StatusInternalServerError, ErrorCode: "farm_create_failed", Cause: err}
	}
	return farmToDTO(farm), nil
}

// Get returns a farm by id.
func (s *FarmService) Get(ctx context.Context, id string) (dto.FarmResponseDTO, *ChatError) {
	farm, err := s.farms.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return dto.FarmResponseDTO{}, &ChatError{StatusCode: http.StatusNotFound, ErrorCode: "farm_not_found", Cause: err}
		}
		return dto.FarmResponseDTO{}, &ChatError{StatusCode: http.StatusInternalServerError, ErrorCode: "farm_lookup_failed", Cause: err}
	}
	return farmToDTO(farm), nil
}

func farmToDTO(f *models.Farm) dto.FarmResponseDTO {
	return dto.FarmResponseDTO{
		ID:                f.ID,
		Name:              f.Name,
		Lat:               f.Lat,
		Lon:               f.Lon,
		CountryCode:       f.CountryCode,
		PreferredLanguage: f.PreferredLanguage,
		CreatedAt:         f.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         f.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}
