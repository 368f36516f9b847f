package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FileTypes is the fixed gallery taxonomy. Its order defines the curated
// sort of the unfiltered feed, so treat it as append-only.
var FileTypes = []string{
	"Birthday Decor",
	"Baby Shower & Welcome",
	"Anniversary Decor",
	"Haldi & Mehndi",
	"Gift Packing",
	"Car Decor",
	"Ring Ceremony Platter",
	"Wedding Decor",
	"Cake Corner",
}

// CategoryRank returns the position of fileType in FileTypes, matched
// case-insensitively. Unknown categories rank after every known one.
func CategoryRank(fileType string) int {
	ft := strings.ToLower(strings.TrimSpace(fileType))
	for i, t := range FileTypes {
		if strings.ToLower(t) == ft {
			return i
		}
	}
	return len(FileTypes)
}

// KnownFileType reports whether fileType is on the taxonomy. The taxonomy
// is advisory: uploads with other values are stored, not rejected.
func KnownFileType(fileType string) bool {
	return CategoryRank(fileType) < len(FileTypes)
}

type GalleryItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FilePath  string             `bson:"filePath" json:"filePath"`
	FileType  string             `bson:"fileType" json:"fileType"`
	LikeCnt   int64              `bson:"likeCnt" json:"likeCnt"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	// SortOrder is populated only by the ranked listing pipeline.
	SortOrder int `bson:"sortOrder,omitempty" json:"sortOrder,omitempty"`
}

// GalleryPage is one page of the unfiltered, rank-ordered feed.
type GalleryPage struct {
	Page      int           `json:"page"`
	Pages     int           `json:"pages"`
	Total     int64         `json:"total"`
	FileTypes []string      `json:"fileTypes"`
	Items     []GalleryItem `json:"items"`
}

// TypedGalleryPage is one page of a single category, newest first.
type TypedGalleryPage struct {
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
	Total int64         `json:"total"`
	Items []GalleryItem `json:"items"`
}
