package service

import "context"

// TemplateEmail is a transactional email rendered by the provider from a stored template.
type TemplateEmail struct {
	To         string
	TemplateID int64
	Params     map[string]any
}

// EmailSender delivers templated transactional emails.
type EmailSender interface {
	SendTemplate(ctx context.Context, email TemplateEmail) error
}
