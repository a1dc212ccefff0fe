package models

import (
	"gorm.io/gorm"
)

// User types
const (
	UserTypeStudent      = "student"
	UserTypeProfessional = "professional"
)

type User struct {
	gorm.Model
	FullName    string `json:"fullName"`
	Email       string `json:"email" gorm:"unique;not null"`
	Phone       string `json:"phone" gorm:"unique;not null"`
	Age         int    `json:"age"`
	UserType    string `json:"userType" gorm:"not null"` // student or professional
	Program     string `json:"program"`                  // required when UserType is student
	Designation string `json:"designation"`              // required when UserType is professional
	Password    string `json:"-" gorm:"not null"`
	IsAdmin     bool   `json:"isAdmin" gorm:"default:false"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
