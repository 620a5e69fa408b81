package models

import (
	"time"

	"gorm.io/gorm"
)

// Category is a node of the shop's category tree. A ParentID of zero marks the
// absolute root; IsRootCategory marks the synthetic shop-root placeholder that
// must never appear in user-facing navigation.
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ParentID       uint `gorm:"index;default:0" json:"parent_id"`
	IsRootCategory bool `gorm:"default:false" json:"is_root_category"`
	Active         bool `gorm:"default:true" json:"active"`
	Position       int  `gorm:"default:0" json:"position"`
	DepthLevel     int  `gorm:"default:0" json:"depth_level"`
	ImageID        uint `json:"image_id"`

	// Default-language presentation, overridden per language by Translations.
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`

	Translations []CategoryTranslation `gorm:"foreignKey:CategoryID" json:"translations,omitempty"`

	// Group whitelist. An empty set means the category is visible to everyone.
	Groups []CustomerGroup `gorm:"many2many:category_groups;" json:"groups,omitempty"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

type CategoryTranslation struct {
	ID         uint `gorm:"primarykey" json:"id"`
	CategoryID uint `gorm:"index:idx_category_translations,unique,priority:1;not null" json:"category_id"`
	LanguageID uint `gorm:"index:idx_category_translations,unique,priority:2;not null" json:"language_id"`

	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
}

type CustomerGroup struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type Customer struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email  string          `gorm:"uniqueIndex;not null" json:"email"`
	Active bool            `gorm:"default:true" json:"active"`
	Groups []CustomerGroup `gorm:"many2many:customer_groups;" json:"groups,omitempty"`
}

type Product struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"uniqueIndex;not null" json:"slug"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null;default:0" json:"price"`
	Active      bool    `gorm:"default:true" json:"active"`
	Position    int     `gorm:"default:0" json:"position"`
	ImageID     uint    `json:"image_id"`

	CategoryID uint     `gorm:"index" json:"category_id"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// Localized applies the translation for the given language on top of the
// default-language fields and returns the resulting copy. The receiver is
// never mutated.
func (c Category) Localized(languageID uint) Category {
	for _, tr := range c.Translations {
		if tr.LanguageID != languageID {
			continue
		}
		if tr.Name != "" {
			c.Name = tr.Name
		}
		if tr.Slug != "" {
			c.Slug = tr.Slug
		}
		if tr.Description != "" {
			c.Description = tr.Description
		}
		break
	}
	return c
}
