package services

import (
	"errors"

	"github.com/draftwise/draftwise/internal/models"
	"gorm.io/gorm"
)

var ErrDuplicateCategoryName = errors.New("a category with this name already exists")

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

type CategoryListParams struct {
	Skip  int
	Limit int
}

func (s *CategoryService) Create(category *models.Category) error {
	var count int64
	if err := s.db.Model(&models.Category{}).Where("name = ?", category.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateCategoryName
	}
	return s.db.Create(category).Error
}

func (s *CategoryService) List(params CategoryListParams) ([]models.Category, error) {
	skip := params.Skip
	if skip < 0 {
		skip = 0
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}

	var categories []models.Category
	err := s.db.Offset(skip).Limit(limit).Order("id ASC").Find(&categories).Error
	return categories, err
}

func (s *CategoryService) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// CategoryUpdate is the whitelist of caller-writable fields. ID and
// created_at are never touched by an update.
type CategoryUpdate struct {
	Name        string
	Description string
}

func (s *CategoryService) Update(id uint, upd *CategoryUpdate) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, err
	}

	if upd.Name != category.Name {
		var count int64
		if err := s.db.Model(&models.Category{}).Where("name = ? AND id <> ?", upd.Name, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrDuplicateCategoryName
		}
	}

	updates := map[string]interface{}{
		"name":        upd.Name,
		"description": upd.Description,
	}
	if err := s.db.Model(&category).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := s.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes the category. Templates referencing it keep their
// category_id; dangling references are treated as uncategorized.
func (s *CategoryService) Delete(id uint) error {
	res := s.db.Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
