package translation

import "time"

// String is one translated UI string, unique per (locale, key).
type String struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Locale    string    `gorm:"not null;index:idx_locale_key,unique" json:"locale"`
	Key       string    `gorm:"not null;index:idx_locale_key,unique" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
