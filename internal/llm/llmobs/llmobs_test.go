package llmobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTranslator struct {
	out string
	err error
}

func (f fakeTranslator) Translate(ctx context.Context, text string) (string, error) {
	return f.out, f.err
}

func TestWrapPassesThrough(t *testing.T) {
	out, err := Wrap(fakeTranslator{out: "你好"}, "gpt-5-mini").Translate(context.Background(), "hello")
	assert.NoError(t, err)
	assert.Equal(t, "你好", out)

	boom := errors.New("timeout")
	out, err = Wrap(fakeTranslator{out: "partial", err: boom}, "gpt-5-mini").Translate(context.Background(), "hello")
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, out)
}
