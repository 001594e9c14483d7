package core

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"securityscan.com/securityscan/model"
)

// BarcodeCounter is the counter every visitor credential is allocated from.
const BarcodeCounter = "barcodeCounter"

// NextSequence atomically increments and returns the named counter. The row
// is created on first use. The upsert and the read run in one transaction so
// concurrent callers never observe the same value.
func NextSequence(db *gorm.DB, name string) (int64, error) {
	var count int64

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count": gorm.Expr("count + 1"),
			}),
		}).Create(&model.Counter{Name: name, Count: 1}).Error
		if err != nil {
			return err
		}

		var counter model.Counter
		if err := tx.First(&counter, "name = ?", name).Error; err != nil {
			return err
		}
		count = counter.Count
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: allocate %q: %v", ErrStorageUnavailable, name, err)
	}

	return count, nil
}
