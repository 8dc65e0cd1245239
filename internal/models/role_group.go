package models

import "time"

// RoleGroup is the permission bucket backing a user's role. Every user belongs
// to exactly one role group; membership is replaced whenever the role changes.
// Group bookkeeping is auxiliary: assignment failures are logged and suppressed
// and never roll back the role change itself.
type RoleGroup struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (RoleGroup) TableName() string {
	return "role_groups"
}
