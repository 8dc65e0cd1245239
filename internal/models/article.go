package models

import "time"

// Article is a piece of journalist-authored content subject to editorial
// approval. It starts unapproved (draft) and transitions to approved exactly
// once; there is no way back.
type Article struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Content     string     `gorm:"not null" json:"content"`
	AuthorID    uint       `gorm:"not null" json:"author_id"`
	Author      User       `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	PublisherID *uint      `json:"publisher_id"`
	Publisher   *Publisher `gorm:"foreignKey:PublisherID" json:"publisher,omitempty"`
	Approved    bool       `gorm:"not null;default:false" json:"approved"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsIndependent reports whether the article is attributed solely to its
// author. Independence is derived from publisher absence, never stored.
func (a *Article) IsIndependent() bool {
	return a.PublisherID == nil
}
