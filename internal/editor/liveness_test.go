package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiveness_TokensValidUntilClose(t *testing.T) {
	var l Liveness
	tok := l.Token()
	assert.True(t, l.Valid(tok))
	assert.Equal(t, tok, l.Token(), "tokens are stable while the view lives")
}

func TestLiveness_CloseInvalidatesEverything(t *testing.T) {
	var l Liveness
	tok := l.Token()
	l.Close()

	assert.False(t, l.Valid(tok))
	assert.False(t, l.Valid(l.Token()), "tokens taken after close are dead too")
}
