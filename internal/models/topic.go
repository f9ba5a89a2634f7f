package models

// Topic groups articles. Slug is the primary key referenced by articles.topic.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// User is a read-only account referenced by article and comment authors.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
