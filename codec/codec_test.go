package codec

import (
	"testing"

	"github.com/hl7bridge/hl7v2/delim"
	"github.com/hl7bridge/hl7v2/ir"
	"github.com/hl7bridge/hl7v2/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seps() delim.Separators { return delim.Default() }

func TestDecodeFieldEmpty(t *testing.T) {
	f := DecodeField(nil, seps(), true)
	assert.False(t, f.Repeated)
	assert.True(t, f.Single.Value.IsEmpty())
}

func TestDecodeFieldNullMarker(t *testing.T) {
	f := DecodeField([]byte(`""`), seps(), true)
	assert.True(t, f.Single.Value.Null)
}

func TestDecodeFieldSingleScalar(t *testing.T) {
	f := DecodeField([]byte("hello"), seps(), true)
	assert.False(t, f.Repeated)
	assert.Equal(t, "hello", f.Single.Value.Raw)
}

func TestDecodeFieldRepeated(t *testing.T) {
	f := DecodeField([]byte("a~b~c"), seps(), true)
	require.True(t, f.Repeated)
	require.Len(t, f.Repetitions, 3)
	assert.Equal(t, "a", f.Repetitions[0].Value.Raw)
	assert.Equal(t, "b", f.Repetitions[1].Value.Raw)
	assert.Equal(t, "c", f.Repetitions[2].Value.Raw)
}

// TestDecodeFieldTrimElision is the seed test from spec.md §8 scenario 2:
// "504599^223344&&IIN&^~" with trim=true decodes to
// ("504599", ("223344", "", "IIN")).
func TestDecodeFieldTrimElision(t *testing.T) {
	f := DecodeField([]byte("504599^223344&&IIN&^~"), seps(), true)
	require.False(t, f.Repeated)
	require.True(t, f.Single.Composite)
	require.Len(t, f.Single.Components, 2)

	assert.Equal(t, "504599", f.Single.Components[0].Single.Raw)

	second := f.Single.Components[1]
	require.True(t, second.Composite)
	require.Len(t, second.SubComponents, 3)
	assert.Equal(t, "223344", second.SubComponents[0].Raw)
	assert.Equal(t, "", second.SubComponents[1].Raw)
	assert.Equal(t, "IIN", second.SubComponents[2].Raw)
}

func TestEncodeFieldTrimElision(t *testing.T) {
	field := ir.Field{Single: ir.Repetition{Composite: true, Components: []ir.Component{
		ir.String("504599"),
		{Composite: true, SubComponents: []value.Value{{Raw: "223344"}, {Raw: ""}, {Raw: "IIN"}}},
	}}}
	out := EncodeField(field, seps(), true)
	assert.Equal(t, "504599^223344&&IIN", string(out))
}

func TestDecodeFieldTrailingRepetitionTrimmed(t *testing.T) {
	f := DecodeField([]byte("a~b~"), seps(), true)
	require.True(t, f.Repeated)
	assert.Len(t, f.Repetitions, 2)
}

func TestDecodeFieldTrailingRepetitionUntrimmed(t *testing.T) {
	f := DecodeField([]byte("a~b~"), seps(), false)
	require.True(t, f.Repeated)
	assert.Len(t, f.Repetitions, 3)
	assert.True(t, f.Repetitions[2].Value.IsEmpty())
}

func TestDecodeFieldEmptyButPresentRepetitions(t *testing.T) {
	f := DecodeField([]byte("a~~b"), seps(), true)
	require.True(t, f.Repeated)
	require.Len(t, f.Repetitions, 3)
	assert.True(t, f.Repetitions[1].Value.IsEmpty())
}

// TestComponentWrap is spec.md §8's "component wrap" property: a component
// that itself contains more than one subcomponent decodes to a 1-tuple of a
// tuple, preserving the component level.
func TestComponentWrap(t *testing.T) {
	rep := DecodeComponents([]byte("a&b"), seps(), true)
	require.True(t, rep.Composite)
	require.Len(t, rep.Components, 1)
	assert.True(t, rep.Components[0].Composite)
	assert.Len(t, rep.Components[0].SubComponents, 2)
}

func TestDecodeSubComponentsSingle(t *testing.T) {
	c := DecodeSubComponents([]byte("x"), seps(), true)
	assert.False(t, c.Composite)
	assert.Equal(t, "x", c.Single.Raw)
}

func TestDecodeSubComponentsMultiple(t *testing.T) {
	c := DecodeSubComponents([]byte("x&y"), seps(), true)
	require.True(t, c.Composite)
	require.Len(t, c.SubComponents, 2)
	assert.Equal(t, "x", c.SubComponents[0].Raw)
	assert.Equal(t, "y", c.SubComponents[1].Raw)
}

func TestRoundTripTrimNormalForm(t *testing.T) {
	raw := "504599^223344&&IIN~second"
	decoded := DecodeField([]byte(raw), seps(), true)
	encoded := EncodeField(decoded, seps(), true)
	redecoded := DecodeField(encoded, seps(), true)
	assert.Equal(t, decoded, redecoded)
}

func TestEncodeFieldNull(t *testing.T) {
	out := EncodeField(ir.Field{Single: ir.Repetition{Value: value.NullValue()}}, seps(), true)
	assert.Equal(t, `""`, string(out))
}

func TestDecodeEncodeFieldWithEscapedDelimiter(t *testing.T) {
	raw := []byte(`a\F\b`)
	f := DecodeField(raw, seps(), true)
	assert.Equal(t, "a|b", f.Single.Value.Raw)
	assert.Equal(t, raw, EncodeField(f, seps(), true))
}
