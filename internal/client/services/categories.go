package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/taskdeck/taskdeck/internal/client/models"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrBadColor     = errors.New("color must look like #rrggbb")
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CategoriesAPI is the slice of the REST client the category service consumes.
type CategoriesAPI interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Category(ctx context.Context, id int64) (*models.Category, error)
	CreateCategory(ctx context.Context, req models.CategoryCreate) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, req models.CategoryUpdate) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, req models.CategoryCreate) (*models.Category, error)
	Update(ctx context.Context, id int64, req models.CategoryUpdate) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	api CategoriesAPI
}

func NewCategoryService(apiClient CategoriesAPI) CategoryService {
	return &categoryService{api: apiClient}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.api.Categories(ctx)
}

func (s *categoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	return s.api.Category(ctx, id)
}

func (s *categoryService) Create(ctx context.Context, req models.CategoryCreate) (*models.Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if req.Color != "" && !colorPattern.MatchString(req.Color) {
		return nil, ErrBadColor
	}
	return s.api.CreateCategory(ctx, req)
}

func (s *categoryService) Update(ctx context.Context, id int64, req models.CategoryUpdate) (*models.Category, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, ErrNameRequired
	}
	if req.Color != nil && !colorPattern.MatchString(*req.Color) {
		return nil, ErrBadColor
	}
	return s.api.UpdateCategory(ctx, id, req)
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteCategory(ctx, id)
}
