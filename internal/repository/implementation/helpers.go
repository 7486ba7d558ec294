package implementation

import (
	"learning-buddy-be/internal/repository/specification"

	"gorm.io/gorm"
)

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// deleteAll clears a table; callers run it inside a unit of work transaction.
func deleteAll(db *gorm.DB, value interface{}) error {
	return db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(value).Error
}
