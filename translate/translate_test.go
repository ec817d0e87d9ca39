package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(language.AmericanEnglish)

	assert.Equal("register R1 missing", From("register %v missing", "R1"))
	assert.Equal("width 7", From("width %d", 7))
}
