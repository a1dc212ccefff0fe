package models

import "gorm.io/gorm"

// Course categories
const (
	CategorySales     = "sales"
	CategoryMarketing = "marketing"
	CategoryBusiness  = "business"
	CategoryOther     = "other"
)

// Course represents a catalog entry with its modules
type Course struct {
	gorm.Model
	Title            string   `json:"title" gorm:"unique;not null"`
	Description      string   `json:"description"`
	Price            uint     `json:"price" gorm:"default:0"`    // major currency units (rupees)
	Duration         int      `json:"duration" gorm:"default:0"` // duration in weeks
	Credits          int      `json:"credits" gorm:"default:0"`
	ImageURL         string   `json:"image_url"`
	Instructor       string   `json:"instructor" gorm:"default:'Dr. Vinod R. Malkar'"`
	Category         string   `json:"category" gorm:"default:'other'"` // sales, marketing, business, other
	Prerequisites    []string `json:"prerequisites" gorm:"serializer:json"`
	LearningOutcomes []string `json:"learning_outcomes" gorm:"serializer:json"`
	TargetAudience   []string `json:"target_audience" gorm:"serializer:json"`
	IsActive         bool     `json:"is_active" gorm:"default:true"`
	IsDeleted        bool     `json:"-" gorm:"default:false"`
	Modules          []Module `json:"modules,omitempty"`
}

// ValidCategory reports whether category is one of the allowed course categories
func ValidCategory(category string) bool {
	switch category {
	case CategorySales, CategoryMarketing, CategoryBusiness, CategoryOther:
		return true
	}
	return false
}
