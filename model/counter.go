package model

// Counter backs the sequence allocator. One row per counter name, created
// lazily on first allocation.
type Counter struct {
	Name  string `gorm:"primaryKey;column:name;size:64"`
	Count int64  `gorm:"column:count;not null;default:0"`
}

func (Counter) TableName() string {
	return "counters"
}
