package models

import "time"

type Setting struct {
	Key   string `gorm:"size:100;primaryKey" json:"key"`
	Value string `gorm:"size:500" json:"value"`

	UpdatedAt time.Time `json:"updated_at"`
}
