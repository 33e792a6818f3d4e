package models

// Weekday rows use ISO numbering as primary key: Monday=1 ... Sunday=7.
type Weekday struct {
	ID     uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Day    string `gorm:"size:10;not null" json:"day"`
	Status bool   `gorm:"default:true" json:"status"`
}
