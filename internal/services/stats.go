package services

import (
	"github.com/draftwise/draftwise/internal/models"
	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type Stats struct {
	Categories      int64 `json:"categories"`
	Templates       int64 `json:"templates"`
	PublicTemplates int64 `json:"public_templates"`
}

func (s *StatsService) GetStats() (*Stats, error) {
	var stats Stats

	if err := s.db.Model(&models.Category{}).Count(&stats.Categories).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.EmailTemplate{}).Count(&stats.Templates).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.EmailTemplate{}).Where("is_public = ?", true).Count(&stats.PublicTemplates).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
