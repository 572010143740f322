package repl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartScansEachLine(t *testing.T) {
	in := strings.NewReader("var x = 1.5;\n\"oops\n")
	var out strings.Builder

	Start(in, &out)

	got := out.String()
	assert.Contains(t, got, `VAR "var"`)
	assert.Contains(t, got, `IDENTIFIER "x" (x)`)
	assert.Contains(t, got, `EQUAL "="`)
	assert.Contains(t, got, `NUMBER "1.5" (1.5)`)
	assert.Contains(t, got, `SEMICOLON ";"`)

	// The second line is broken but still reported, not fatal.
	assert.Contains(t, got, "error: Unterminated string.")

	// EOF sentinels are not echoed.
	assert.NotContains(t, got, "EOF")
}
