// Package models contains data structures for the application's domain models.
package models

import "time"

// Bot represents one North Pole persona. Bots are seeded once at setup
// time and are not mutated at runtime.
type Bot struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Handle    string    `gorm:"uniqueIndex;not null" json:"handle"`
	Name      string    `gorm:"not null" json:"name"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
