package snippet

// Snippet is a named static block of embed example text shown to the user.
// Content is fixed at catalog construction and never mutated afterwards.
type Snippet struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}
