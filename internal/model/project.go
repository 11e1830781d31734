package model

import "time"

// Project is a finished work shown in the public portfolio. Title and
// description are stored in both languages; ImagesURLs holds the public
// URLs of the uploaded gallery images in submission order.
type Project struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"` // Arabic
	TitleEn       string    `json:"title_en"`
	Description   string    `json:"description"` // Arabic
	DescriptionEn string    `json:"description_en"`
	ImagesURLs    []string  `json:"images_urls"`
	CreatedAt     time.Time `json:"created_at"`
}

// LocalizedTitle returns the title for the given language code, falling
// back to the Arabic title when the English one is empty.
func (p *Project) LocalizedTitle(lang string) string {
	if lang == "en" && p.TitleEn != "" {
		return p.TitleEn
	}
	return p.Title
}
