// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// CategoryTypeModel represents the category_types lookup table. Its rows are
// seeded once: 1 = income, 2 = expense.
type CategoryTypeModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(10);not null;uniqueIndex"`
}

// TableName returns the table name for the CategoryTypeModel.
func (CategoryTypeModel) TableName() string {
	return "category_types"
}

// SeedCategoryTypes returns the fixed rows of the category_types table.
func SeedCategoryTypes() []CategoryTypeModel {
	return []CategoryTypeModel{
		{ID: entity.CategoryTypeIDIncome, Name: string(entity.CategoryTypeIncome)},
		{ID: entity.CategoryTypeIDExpense, Name: string(entity.CategoryTypeExpense)},
	}
}

// CategoryModel represents the categories table in the database. Default
// categories have a null OwnerUserID; custom ones carry their owner.
type CategoryModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_categories_owner_name"`
	TypeID      int64     `gorm:"not null;index"`
	IsDefault   bool      `gorm:"not null;default:false"`
	OwnerUserID *int64    `gorm:"index;uniqueIndex:idx_categories_owner_name"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	Type *CategoryTypeModel `gorm:"foreignKey:TypeID;references:ID"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	categoryType, _ := entity.CategoryTypeFromID(m.TypeID)

	var owner *entity.UserID
	if m.OwnerUserID != nil {
		id := entity.UserID(*m.OwnerUserID)
		owner = &id
	}

	return &entity.Category{
		ID:          entity.CategoryID(m.ID),
		Name:        m.Name,
		Type:        categoryType,
		IsDefault:   m.IsDefault,
		OwnerUserID: owner,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	var owner *int64
	if category.OwnerUserID != nil {
		id := category.OwnerUserID.Int64()
		owner = &id
	}

	return &CategoryModel{
		ID:          category.ID.Int64(),
		Name:        category.Name,
		TypeID:      category.Type.TypeID(),
		IsDefault:   category.IsDefault,
		OwnerUserID: owner,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

// UserCategoryModel represents the user_categories membership table: one row
// per (user, category) pair carrying the user's per-category settings.
type UserCategoryModel struct {
	UserID       int64     `gorm:"primaryKey"`
	CategoryID   int64     `gorm:"primaryKey"`
	CustomName   *string   `gorm:"type:varchar(50)"`
	IsVisible    bool      `gorm:"not null;default:true"`
	DisplayOrder int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the UserCategoryModel.
func (UserCategoryModel) TableName() string {
	return "user_categories"
}

// ToUserCategory joins a membership row with its category row into the
// per-user view.
func (m *UserCategoryModel) ToUserCategory(category *CategoryModel) *entity.UserCategory {
	categoryType, _ := entity.CategoryTypeFromID(category.TypeID)

	return &entity.UserCategory{
		CategoryID:   entity.CategoryID(m.CategoryID),
		UserID:       entity.UserID(m.UserID),
		Name:         category.Name,
		CustomName:   m.CustomName,
		Type:         categoryType,
		IsDefault:    category.IsDefault,
		IsVisible:    m.IsVisible,
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
