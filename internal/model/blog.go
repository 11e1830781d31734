package model

import "time"

// Blog is an article in the public blog. Same bilingual shape as Project
// plus an optional category used by the listing filter.
type Blog struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"` // Arabic
	TitleEn       string    `json:"title_en"`
	Description   string    `json:"description"` // Arabic
	DescriptionEn string    `json:"description_en"`
	Category      string    `json:"category,omitempty"`
	ImagesURLs    []string  `json:"images_urls"`
	CreatedAt     time.Time `json:"created_at"`
}

// BlogListOptions carries the optional filters for the blog listing.
// Empty values mean no filtering; Query matches either language's title.
type BlogListOptions struct {
	Query    string
	Category string
}
