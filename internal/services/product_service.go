// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/terrazul/terrazul-backend/internal/models"
	"github.com/terrazul/terrazul-backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	ID                  string          `json:"id,omitempty" validate:"omitempty,slug"`
	Name                string          `json:"name" validate:"required,min=3,max=255"`
	Description         string          `json:"description" validate:"required,min=10"`
	PriceNumber         int             `json:"price_number" validate:"required,min=1"`
	Prices              map[string]int  `json:"prices,omitempty"`
	Img                 string          `json:"img,omitempty"`
	IsNew               bool            `json:"is_new,omitempty"`
	Region              string          `json:"region,omitempty"`
	RoastLevel          string          `json:"roast_level,omitempty"`
	TastingNotes        []string        `json:"tasting_notes,omitempty"`
	Acidity             *int            `json:"acidity,omitempty" validate:"omitempty,min=1,max=5"`
	Intensity           *int            `json:"intensity,omitempty" validate:"omitempty,min=1,max=5"`
	Bitterness          *int            `json:"bitterness,omitempty" validate:"omitempty,min=1,max=5"`
	GrindOptions        []string        `json:"grind_options,omitempty"`
	TastingProfileImage string          `json:"tasting_profile_image,omitempty"`
	ArtInfo             *models.ArtInfo `json:"art_info,omitempty"`
}

type UpdateProductRequest struct {
	Name                string          `json:"name,omitempty" validate:"omitempty,min=3,max=255"`
	Description         string          `json:"description,omitempty" validate:"omitempty,min=10"`
	PriceNumber         *int            `json:"price_number,omitempty" validate:"omitempty,min=1"`
	Prices              map[string]int  `json:"prices,omitempty"`
	Img                 string          `json:"img,omitempty"`
	IsNew               *bool           `json:"is_new,omitempty"`
	Region              string          `json:"region,omitempty"`
	RoastLevel          string          `json:"roast_level,omitempty"`
	TastingNotes        []string        `json:"tasting_notes,omitempty"`
	Acidity             *int            `json:"acidity,omitempty" validate:"omitempty,min=1,max=5"`
	Intensity           *int            `json:"intensity,omitempty" validate:"omitempty,min=1,max=5"`
	Bitterness          *int            `json:"bitterness,omitempty" validate:"omitempty,min=1,max=5"`
	GrindOptions        []string        `json:"grind_options,omitempty"`
	TastingProfileImage string          `json:"tasting_profile_image,omitempty"`
	ArtInfo             *models.ArtInfo `json:"art_info,omitempty"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) ListProducts(params utils.PaginationParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{})

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "name", "price_number"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *ProductService) GetProduct(id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Generate id from name when not provided
	id := req.ID
	if id == "" {
		id = utils.Slugify(req.Name)
	}
	if id == "" {
		return nil, errors.New("product name does not yield a valid id")
	}

	var existing models.Product
	if err := s.db.First(&existing, "id = ?", id).Error; err == nil {
		return nil, fmt.Errorf("product %q already exists", id)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	product := &models.Product{
		ID:                  id,
		Name:                req.Name,
		Description:         req.Description,
		PriceNumber:         req.PriceNumber,
		Prices:              models.PriceMap(req.Prices),
		Img:                 req.Img,
		IsNew:               req.IsNew,
		Region:              req.Region,
		RoastLevel:          req.RoastLevel,
		TastingNotes:        pq.StringArray(req.TastingNotes),
		Acidity:             req.Acidity,
		Intensity:           req.Intensity,
		Bitterness:          req.Bitterness,
		GrindOptions:        pq.StringArray(req.GrindOptions),
		TastingProfileImage: req.TastingProfileImage,
		ArtInfo:             req.ArtInfo,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) UpdateProduct(id string, req *UpdateProductRequest) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Prepare updates
	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.PriceNumber != nil {
		updates["price_number"] = *req.PriceNumber
	}
	if req.Prices != nil {
		updates["prices"] = models.PriceMap(req.Prices)
	}
	if req.Img != "" {
		updates["img"] = req.Img
	}
	if req.IsNew != nil {
		updates["is_new"] = *req.IsNew
	}
	if req.Region != "" {
		updates["region"] = req.Region
	}
	if req.RoastLevel != "" {
		updates["roast_level"] = req.RoastLevel
	}
	if req.TastingNotes != nil {
		updates["tasting_notes"] = pq.StringArray(req.TastingNotes)
	}
	if req.Acidity != nil {
		updates["acidity"] = *req.Acidity
	}
	if req.Intensity != nil {
		updates["intensity"] = *req.Intensity
	}
	if req.Bitterness != nil {
		updates["bitterness"] = *req.Bitterness
	}
	if req.GrindOptions != nil {
		updates["grind_options"] = pq.StringArray(req.GrindOptions)
	}
	if req.TastingProfileImage != "" {
		updates["tasting_profile_image"] = req.TastingProfileImage
	}
	if req.ArtInfo != nil {
		updates["art_info"] = req.ArtInfo
	}

	if err := s.db.Model(&product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &product, nil
}

func (s *ProductService) DeleteProduct(id string) error {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("product not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	// Soft delete; carts hold snapshots and are unaffected
	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

func (s *ProductService) CountProducts() (total int64, fresh int64, err error) {
	if err = s.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count products: %w", err)
	}
	if err = s.db.Model(&models.Product{}).Where("is_new = ?", true).Count(&fresh).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count new products: %w", err)
	}
	return total, fresh, nil
}
