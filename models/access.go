package models

// AccessCount is the number of requests observed for a normalized path.
type AccessCount struct {
	Path  string `json:"path"`
	Count int64  `json:"count"`
}
