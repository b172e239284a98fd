package model

// Label tags tasks (bug, feature, docs, etc.).
type Label struct {
	ID    string `gorm:"primaryKey;size:64" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Color string `gorm:"size:16;not null" json:"color"`
}
