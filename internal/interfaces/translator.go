package interfaces

import "context"

// Translator turns an English Markdown report into its Chinese version.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}
