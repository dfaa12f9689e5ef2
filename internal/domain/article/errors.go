package article

import "errors"

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrSlugTaken       = errors.New("slug already in use")
)
