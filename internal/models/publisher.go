package models

import "time"

// Publisher is a news organization. Editors and journalists are staffed onto
// publishers through plain many-to-many associations; readers subscribe to
// publishers through User.SubscribedPublishers.
type Publisher struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Editors     []User `gorm:"many2many:publisher_editors" json:"editors,omitempty"`
	Journalists []User `gorm:"many2many:publisher_journalists" json:"journalists,omitempty"`
}
