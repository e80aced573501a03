package services

import (
	"github.com/draftwise/draftwise/internal/models"
	"gorm.io/gorm"
)

type TemplateService struct {
	db *gorm.DB
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{db: db}
}

// TemplateListParams are the optional filters for listing templates.
// Filters compose with logical AND; Tag matches as a substring of the
// comma-separated tags string.
type TemplateListParams struct {
	Skip       int
	Limit      int
	CategoryID *uint
	Tag        string
	IsPublic   *bool
}

func (s *TemplateService) Create(template *models.EmailTemplate) error {
	return s.db.Create(template).Error
}

func (s *TemplateService) List(params TemplateListParams) ([]models.EmailTemplate, error) {
	skip := params.Skip
	if skip < 0 {
		skip = 0
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}

	query := s.db.Model(&models.EmailTemplate{})
	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}
	if params.Tag != "" {
		query = query.Where("tags LIKE ?", "%"+params.Tag+"%")
	}
	if params.IsPublic != nil {
		query = query.Where("is_public = ?", *params.IsPublic)
	}

	var templates []models.EmailTemplate
	err := query.Offset(skip).Limit(limit).Order("id ASC").Find(&templates).Error
	return templates, err
}

func (s *TemplateService) GetByID(id uint) (*models.EmailTemplate, error) {
	var template models.EmailTemplate
	if err := s.db.First(&template, id).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

// TemplateUpdate is the whitelist of caller-writable fields. ID and
// created_at are never touched by an update.
type TemplateUpdate struct {
	Name       string
	Subject    string
	Content    string
	CategoryID *uint
	Tags       string
	IsPublic   bool
}

func (s *TemplateService) Update(id uint, upd *TemplateUpdate) (*models.EmailTemplate, error) {
	var template models.EmailTemplate
	if err := s.db.First(&template, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":        upd.Name,
		"subject":     upd.Subject,
		"content":     upd.Content,
		"category_id": upd.CategoryID,
		"tags":        upd.Tags,
		"is_public":   upd.IsPublic,
	}
	if err := s.db.Model(&template).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := s.db.First(&template, id).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

func (s *TemplateService) Delete(id uint) error {
	res := s.db.Delete(&models.EmailTemplate{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
