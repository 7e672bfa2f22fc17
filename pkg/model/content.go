package model

import "time"

type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

type CaseStudy struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Industry    string   `json:"industry"`
	Challenge   string   `json:"challenge"`
	Solution    string   `json:"solution"`
	Results     []string `json:"results"`
	ImageURL    string   `json:"image_url"`
	PDFFilename string   `json:"pdf_filename,omitempty"`
}

type BlogPost struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Category    string     `json:"category"`
	Author      string     `json:"author"`
	ImageURL    string     `json:"image_url"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Status      string     `json:"status"`
}

const BlogStatusComingSoon = "coming_soon"

// AvailableTimes is the envelope of GET /api/available-times.
type AvailableTimes struct {
	Times []string `json:"times"`
}
