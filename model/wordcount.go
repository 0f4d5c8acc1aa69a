package model

// WordCount pairs a word (or search keyword) with its frequency.
// Ranking operations return slices of WordCount sorted by Count
// descending.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}
