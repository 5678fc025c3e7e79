package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_TextLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug", "text")
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, want := range []string{"level=DEBUG", "msg=dbg", "a=1", "level=INFO", "b=2", "level=WARN", "c=3", "level=ERROR", "d=4"} {
		assert.Contains(t, out, want)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn", "text")

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_JSONWith(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "json").With("collection", "history")

	log.Info(context.Background(), "cleared", "count", 5)

	out := buf.String()
	assert.Contains(t, out, `"collection":"history"`)
	assert.Contains(t, out, `"count":5`)
	assert.Contains(t, out, `"msg":"cleared"`)
}

func TestDiscard_DoesNotPanic(t *testing.T) {
	log := Discard()
	log.Error(context.TODO(), "nothing")
}
