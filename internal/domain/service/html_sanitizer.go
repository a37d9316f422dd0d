package service

// HTMLSanitizer strips unsafe markup from rich-text fields.
type HTMLSanitizer interface {
	Sanitize(html string) string
}
