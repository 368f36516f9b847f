package models

import "time"

type Testimonial struct {
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}
