package models

import "time"

// Newsletter is journalist-authored content that is not subject to editorial
// approval; it is visible as soon as it is created.
type Newsletter struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Content     string     `gorm:"not null" json:"content"`
	AuthorID    uint       `gorm:"not null" json:"author_id"`
	Author      User       `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	PublisherID *uint      `json:"publisher_id"`
	Publisher   *Publisher `gorm:"foreignKey:PublisherID" json:"publisher,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsIndependent reports whether the newsletter has no associated publisher.
func (n *Newsletter) IsIndependent() bool {
	return n.PublisherID == nil
}
