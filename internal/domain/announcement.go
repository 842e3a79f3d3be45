package domain

import "time"

type Announcement struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ClubID     string    `json:"clubId"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedOn  time.Time `json:"createdAt"`
}
