package models

import "gorm.io/gorm"

// Module represents a section/module within a course
type Module struct {
	gorm.Model
	CourseID     uint           `json:"course_id" gorm:"index;not null"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Content      string         `json:"content"`
	VideoURL     string         `json:"video_url"`
	Duration     int            `json:"duration" gorm:"default:0"`    // duration in minutes
	OrderIndex   int            `json:"order_index" gorm:"default:0"` // Module order in course
	PassingScore int            `json:"passing_score" gorm:"default:70"`
	IsPublished  bool           `json:"is_published" gorm:"default:false"`
	IsDeleted    bool           `json:"-" gorm:"default:false"`
	Quiz         []QuizQuestion `json:"quiz,omitempty"`
}

// QuizQuestion is a single question in a module's quiz
type QuizQuestion struct {
	gorm.Model
	ModuleID      uint     `json:"module_id" gorm:"index;not null"`
	Question      string   `json:"question"`
	Options       []string `json:"options" gorm:"serializer:json"`
	CorrectAnswer int      `json:"correct_answer"` // index into Options
	Marks         int      `json:"marks" gorm:"default:1"`
	IsDeleted     bool     `json:"-" gorm:"default:false"`
}
