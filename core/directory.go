package core

import (
	"errors"

	"gorm.io/gorm"

	"securityscan.com/securityscan/model"
)

// DepartmentInfo and PersonInfo are the read-only directory views the visit
// lifecycle needs: display names for listings and a contact address for
// notifications. The directory tables themselves are owned by the admin CRUD
// surface, never mutated here.

type DepartmentInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PersonInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"dept"`
	Role       string `json:"role"`
}

func ResolveDepartment(db *gorm.DB, id string) (*DepartmentInfo, error) {
	if id == "" {
		return nil, nil
	}
	var dept model.Department
	if err := db.First(&dept, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &DepartmentInfo{ID: dept.ID, Name: dept.Name}, nil
}

func ResolvePerson(db *gorm.DB, id string) (*PersonInfo, error) {
	if id == "" {
		return nil, nil
	}
	var person model.DeptUser
	if err := db.First(&person, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &PersonInfo{
		ID:         person.ID,
		Name:       person.Name,
		Email:      person.Email,
		Phone:      person.PhoneNumber,
		Department: person.DepartmentID,
		Role:       person.Role,
	}, nil
}
