// Package model defines domain entities for the application.
package model

// Book represents a catalog entry.
//
// Available is derived state: it is false exactly while an open loan
// references the book, and is toggled only by the loan workflow.
type Book struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Genre     string `json:"genre"`
	Year      int    `json:"year"`
	Available bool   `json:"available"`
}
