package models

import (
	"time"
)

// FoundItem is a physical object reported as found, with its stored photo
// and an AI-generated description used for matching.
type FoundItem struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ImagePath   string    `gorm:"size:512" json:"image_path"`
	ThumbPath   string    `gorm:"size:512" json:"thumb_path,omitempty"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"size:255;default:Unknown" json:"location"`
	CreatedAt   time.Time `json:"created_at"`
}

func (FoundItem) TableName() string {
	return "found_items"
}

// SimplifiedItem is the reduced view of a found item that gets embedded in
// the matching prompt. Image data is deliberately excluded.
type SimplifiedItem struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

func (f *FoundItem) Simplified() SimplifiedItem {
	return SimplifiedItem{
		ID:          f.ID,
		Description: f.Description,
		Location:    f.Location,
	}
}

// Match is one scored candidate as returned by the model. Never persisted.
type Match struct {
	ID     string `json:"id"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// MatchedItem joins a surviving match back to its full record for rendering.
type MatchedItem struct {
	FoundItem
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}
