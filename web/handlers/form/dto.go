package form

import (
	"gorm.io/gorm"

	"securityscan.com/securityscan/core"
	"securityscan.com/securityscan/model"
)

type FormDTO struct {
	model.Form
	DepartmentDetails   *core.DepartmentInfo `json:"departmentDetails,omitempty"`
	PersonToMeetDetails *core.PersonInfo     `json:"personToMeetDetails,omitempty"`
}

type ScanRecordDTO struct {
	model.ScanRecord
	DepartmentName   string `json:"departmentName,omitempty"`
	PersonToMeetName string `json:"personToMeetName,omitempty"`
}

type ScanResponseDTO struct {
	Status core.ScanStatus  `json:"status"`
	Form   model.Form       `json:"form"`
	Record model.ScanRecord `json:"record"`
}

// directory is a batch-loaded snapshot of the department and person tables,
// so listings don't resolve references row by row.
type directory struct {
	departments map[string]core.DepartmentInfo
	persons     map[string]core.PersonInfo
}

func loadDirectory(db *gorm.DB) (*directory, error) {
	dir := &directory{
		departments: map[string]core.DepartmentInfo{},
		persons:     map[string]core.PersonInfo{},
	}

	var departments []model.Department
	if err := db.Find(&departments).Error; err != nil {
		return nil, err
	}
	for _, d := range departments {
		dir.departments[d.ID] = core.DepartmentInfo{ID: d.ID, Name: d.Name}
	}

	var persons []model.DeptUser
	if err := db.Find(&persons).Error; err != nil {
		return nil, err
	}
	for _, p := range persons {
		dir.persons[p.ID] = core.PersonInfo{
			ID:         p.ID,
			Name:       p.Name,
			Email:      p.Email,
			Phone:      p.PhoneNumber,
			Department: p.DepartmentID,
			Role:       p.Role,
		}
	}

	return dir, nil
}

func (d *directory) decorateForm(f model.Form) FormDTO {
	dto := FormDTO{Form: f}
	if dept, ok := d.departments[f.DepartmentID]; ok {
		dto.DepartmentDetails = &dept
	}
	if person, ok := d.persons[f.PersonToMeetID]; ok {
		dto.PersonToMeetDetails = &person
	}
	return dto
}

func (d *directory) decorateScan(r model.ScanRecord) ScanRecordDTO {
	dto := ScanRecordDTO{ScanRecord: r}
	if dept, ok := d.departments[r.DepartmentID]; ok {
		dto.DepartmentName = dept.Name
	}
	if person, ok := d.persons[r.PersonToMeetID]; ok {
		dto.PersonToMeetName = person.Name
	}
	return dto
}
