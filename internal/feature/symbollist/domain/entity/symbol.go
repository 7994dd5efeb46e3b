// Package entity defines the domain models for the symbollist feature.
package entity

import "time"

// Symbol is a listed company known to the name directory.
// Code is the exchange ticker as the provider reports it (e.g. "BRK.B").
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	Exchange  string    `gorm:"size:50;not null;default:''"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
