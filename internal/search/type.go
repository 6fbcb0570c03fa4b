package search

type Result struct {
	Page    string `json:"page"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}
