// Package models holds the GORM mappings of the classicmodels tables.
package models

// All returns every model in dependency order, for AutoMigrate and seeding.
func All() []interface{} {
	return []interface{}{
		&OfficeModel{},
		&EmployeeModel{},
		&CustomerModel{},
		&ProductLineModel{},
		&ProductModel{},
		&OrderModel{},
		&OrderDetailModel{},
		&PaymentModel{},
	}
}
