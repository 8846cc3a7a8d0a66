package models

type EmployeeModel struct {
	EmployeeNumber int64  `gorm:"column:employeeNumber;primaryKey;autoIncrement:false"`
	LastName       string `gorm:"column:lastName;size:50;not null;index:idx_employees_name,priority:2"`
	FirstName      string `gorm:"column:firstName;size:50;not null;index:idx_employees_name,priority:1"`
	Extension      string `gorm:"column:extension;size:10;not null"`
	Email          string `gorm:"column:email;size:100;not null"`
	OfficeCode     string `gorm:"column:officeCode;size:10;not null;index"`
	ReportsTo      *int64 `gorm:"column:reportsTo;index"`
	JobTitle       string `gorm:"column:jobTitle;size:50;not null"`

	// Note: reportsTo and officeCode are plain keys; no associations are
	// declared and lookups go through the repositories.
}

func (EmployeeModel) TableName() string {
	return "employees"
}
