// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
	"github.com/household-ledger/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
//
// Default categories have no membership row until a user customizes them;
// queries left-join user_categories and fall back to the category's own
// values, so every user sees defaults without any per-user seeding.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// userCategoryRow is the flat scan target of the membership join.
type userCategoryRow struct {
	CategoryID   int64
	Name         string
	CustomName   *string
	TypeID       int64
	IsDefault    bool
	IsVisible    bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (row *userCategoryRow) toUserCategory(userID entity.UserID) *entity.UserCategory {
	categoryType, _ := entity.CategoryTypeFromID(row.TypeID)
	return &entity.UserCategory{
		CategoryID:   entity.CategoryID(row.CategoryID),
		UserID:       userID,
		Name:         row.Name,
		CustomName:   row.CustomName,
		Type:         categoryType,
		IsDefault:    row.IsDefault,
		IsVisible:    row.IsVisible,
		DisplayOrder: row.DisplayOrder,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

// Create inserts the category row and the creating user's membership row in
// one database transaction. Constraint violations are translated to domain
// sentinels so the use case can classify them.
func (r *categoryRepository) Create(ctx context.Context, data adapter.CreateCategoryData) (*entity.Category, error) {
	now := time.Now().UTC()
	owner := data.UserID.Int64()
	categoryModel := &model.CategoryModel{
		Name:        data.Name,
		TypeID:      data.TypeID,
		IsDefault:   false,
		OwnerUserID: &owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(categoryModel).Error; err != nil {
			return err
		}
		membership := &model.UserCategoryModel{
			UserID:     data.UserID.Int64(),
			CategoryID: categoryModel.ID,
			IsVisible:  true,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return tx.Create(membership).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, domainerror.ErrTransactionTypeNotFound
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, domainerror.ErrDuplicateCategory
		default:
			return nil, err
		}
	}

	return categoryModel.ToEntity(), nil
}

// FindByID retrieves a category by its id regardless of owner.
func (r *categoryRepository) FindByID(ctx context.Context, id entity.CategoryID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id.Int64()).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByName retrieves a category visible to the user by exact name.
func (r *categoryRepository) FindByName(ctx context.Context, userID entity.UserID, name string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("name = ? AND (is_default = ? OR owner_user_id = ?)", name, true, userID.Int64()).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByUserID retrieves all categories visible to the user.
func (r *categoryRepository) FindByUserID(ctx context.Context, userID entity.UserID) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("is_default = ? OR owner_user_id = ?", true, userID.Int64()).
		Order("id ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = categoryModels[i].ToEntity()
	}
	return categories, nil
}

// FindByIDs retrieves the categories with the given ids that are visible to
// the user.
func (r *categoryRepository) FindByIDs(ctx context.Context, userID entity.UserID, ids []entity.CategoryID) ([]*entity.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rawIDs := make([]int64, len(ids))
	for i, id := range ids {
		rawIDs[i] = id.Int64()
	}

	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("id IN ? AND (is_default = ? OR owner_user_id = ?)", rawIDs, true, userID.Int64()).
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = categoryModels[i].ToEntity()
	}
	return categories, nil
}

// FindAllWithPagination retrieves a page of the user's category views.
func (r *categoryRepository) FindAllWithPagination(ctx context.Context, options adapter.CategoryListOptions) (*adapter.CategoryListResult, error) {
	base := r.userViewQuery(ctx, options.UserID)

	if options.Type != nil {
		base = base.Where("categories.type_id = ?", options.Type.TypeID())
	}
	if !options.IncludeHidden {
		base = base.Where("COALESCE(user_categories.is_visible, ?) = ?", true, true)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []userCategoryRow
	err := base.Session(&gorm.Session{}).
		Order(categoryOrderClause(options.SortBy, options.SortOrder)).
		Limit(options.Pagination.Limit()).
		Offset(options.Pagination.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entity.UserCategory, len(rows))
	for i := range rows {
		items[i] = rows[i].toUserCategory(options.UserID)
	}

	return &adapter.CategoryListResult{
		Items: items,
		Total: total,
	}, nil
}

// FindByIDWithUser retrieves the user-scoped view of one category. Another
// user's custom category yields nil, indistinguishable from absence.
func (r *categoryRepository) FindByIDWithUser(ctx context.Context, id entity.CategoryID, userID entity.UserID) (*entity.UserCategory, error) {
	var row userCategoryRow
	result := r.userViewQuery(ctx, userID).
		Where("categories.id = ?", id.Int64()).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return row.toUserCategory(userID), nil
}

// Update applies a partial update to the user's membership row, creating it
// first when the user has never customized the category.
func (r *categoryRepository) Update(ctx context.Context, id entity.CategoryID, userID entity.UserID, patch adapter.CategoryPatch) (*entity.UserCategory, error) {
	now := time.Now().UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var membership model.UserCategoryModel
		result := tx.Where("user_id = ? AND category_id = ?", userID.Int64(), id.Int64()).
			First(&membership)
		if result.Error != nil {
			if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return result.Error
			}
			membership = model.UserCategoryModel{
				UserID:     userID.Int64(),
				CategoryID: id.Int64(),
				IsVisible:  true,
				CreatedAt:  now,
			}
			if err := tx.Create(&membership).Error; err != nil {
				return err
			}
		}

		updates := map[string]interface{}{"updated_at": now}
		if patch.IsVisible != nil {
			updates["is_visible"] = *patch.IsVisible
		}
		if patch.ClearCustomName {
			updates["custom_name"] = nil
		} else if patch.CustomName != nil {
			updates["custom_name"] = *patch.CustomName
		}
		if patch.DisplayOrder != nil {
			updates["display_order"] = *patch.DisplayOrder
		}

		return tx.Model(&model.UserCategoryModel{}).
			Where("user_id = ? AND category_id = ?", userID.Int64(), id.Int64()).
			Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return r.FindByIDWithUser(ctx, id, userID)
}

// userViewQuery builds the categories-to-membership left join scoped to what
// the user can see.
func (r *categoryRepository) userViewQuery(ctx context.Context, userID entity.UserID) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Select(`categories.id AS category_id,
			categories.name AS name,
			user_categories.custom_name AS custom_name,
			categories.type_id AS type_id,
			categories.is_default AS is_default,
			COALESCE(user_categories.is_visible, TRUE) AS is_visible,
			COALESCE(user_categories.display_order, 0) AS display_order,
			COALESCE(user_categories.created_at, categories.created_at) AS created_at,
			COALESCE(user_categories.updated_at, categories.updated_at) AS updated_at`).
		Joins("LEFT JOIN user_categories ON user_categories.category_id = categories.id AND user_categories.user_id = ?", userID.Int64()).
		Where("categories.is_default = ? OR categories.owner_user_id = ?", true, userID.Int64())
}

func categoryOrderClause(sortBy valueobject.CategorySortField, sortOrder valueobject.SortDirection) string {
	direction := "ASC"
	if sortOrder == valueobject.SortDesc {
		direction = "DESC"
	}

	var column string
	switch sortBy {
	case valueobject.CategorySortByName:
		column = "COALESCE(user_categories.custom_name, categories.name)"
	case valueobject.CategorySortByCreatedAt:
		column = "categories.created_at"
	default:
		column = "COALESCE(user_categories.display_order, 0)"
	}

	// Category id keeps the order stable across equal sort keys.
	return fmt.Sprintf("%s %s, categories.id %s", column, direction, direction)
}
