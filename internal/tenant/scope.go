package tenant

import "gorm.io/gorm"

func Scope(brandID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("brand_id = ?", brandID)
	}
}
