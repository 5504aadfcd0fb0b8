package delim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, byte('|'), s.Field)
	assert.Equal(t, byte('^'), s.Component)
	assert.Equal(t, byte('&'), s.SubComponent)
	assert.Equal(t, byte('~'), s.Repetition)
	assert.Equal(t, byte('\\'), s.Escape)
}

func TestKindOf(t *testing.T) {
	s := Default()
	assert.Equal(t, Field, s.KindOf('|'))
	assert.Equal(t, Component, s.KindOf('^'))
	assert.Equal(t, SubComponent, s.KindOf('&'))
	assert.Equal(t, Repetition, s.KindOf('~'))
	assert.Equal(t, NoMatch, s.KindOf('X'))
	assert.Equal(t, NoMatch, s.KindOf('\\'))
}

func TestByteOf(t *testing.T) {
	s := Default()
	assert.Equal(t, byte('|'), s.ByteOf(Field))
	assert.Equal(t, byte('^'), s.ByteOf(Component))
	assert.Equal(t, byte('&'), s.ByteOf(SubComponent))
	assert.Equal(t, byte('~'), s.ByteOf(Repetition))
}

func TestDialectTerminator(t *testing.T) {
	assert.Equal(t, byte('\r'), Wire.Terminator())
	assert.Equal(t, byte('\n'), Text.Terminator())
}

func TestIsDelimiterCandidate(t *testing.T) {
	assert.True(t, IsDelimiterCandidate('^'))
	assert.True(t, IsDelimiterCandidate('~'))
	assert.False(t, IsDelimiterCandidate('A'))
	assert.False(t, IsDelimiterCandidate('9'))
	assert.False(t, IsDelimiterCandidate(' '))
}

func TestIsPrintable(t *testing.T) {
	assert.True(t, IsPrintable('A'))
	assert.True(t, IsPrintable(0x20))
	assert.True(t, IsPrintable(0x7E))
	assert.True(t, IsPrintable(0xA0))
	assert.False(t, IsPrintable(0x1F))
	assert.False(t, IsPrintable(0x7F))
	assert.False(t, IsPrintable(0x9F))
}
