// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Role determines what a user may do: readers subscribe, journalists author
// content, editors approve articles. A user holds exactly one role at a time.
type Role string

const (
	// RoleReader subscribes to publishers and journalists.
	RoleReader Role = "reader"
	// RoleEditor reviews and approves articles.
	RoleEditor Role = "editor"
	// RoleJournalist authors articles and newsletters.
	RoleJournalist Role = "journalist"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleReader, RoleEditor, RoleJournalist:
		return true
	}
	return false
}

// GroupName returns the name of the role group backing this role.
func (r Role) GroupName() string {
	switch r {
	case RoleReader:
		return "Reader"
	case RoleEditor:
		return "Editor"
	case RoleJournalist:
		return "Journalist"
	}
	return ""
}

// User represents an account in the newsroom platform.
//
// Subscription associations are meaningful only while Role is reader; they are
// cleared inside the SetRole transaction when the user becomes a journalist.
// A journalist's independent content is not stored on the user: it is derived
// by querying authored articles/newsletters with no publisher.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Role      Role           `gorm:"type:varchar(20);not null;default:'reader'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	SubscribedPublishers  []Publisher `gorm:"many2many:reader_publisher_subscriptions" json:"subscribed_publishers,omitempty"`
	SubscribedJournalists []*User     `gorm:"many2many:reader_journalist_subscriptions;joinForeignKey:ReaderID;joinReferences:JournalistID" json:"subscribed_journalists,omitempty"`
	RoleGroups            []RoleGroup `gorm:"many2many:user_role_groups" json:"-"`
}

// IsReader reports whether the user currently holds the reader role.
func (u *User) IsReader() bool { return u.Role == RoleReader }

// IsEditor reports whether the user currently holds the editor role.
func (u *User) IsEditor() bool { return u.Role == RoleEditor }

// IsJournalist reports whether the user currently holds the journalist role.
func (u *User) IsJournalist() bool { return u.Role == RoleJournalist }
