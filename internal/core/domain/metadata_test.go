package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_EncodeNil(t *testing.T) {
	var m Metadata
	s, err := m.Encode()
	require.NoError(t, err)
	assert.Equal(t, "{}", s)
}

func TestMetadata_EncodeDecode(t *testing.T) {
	m := Metadata{
		"label":   StringValue("crate"),
		"mass":    NumberValue(12.5),
		"fragile": BoolValue(true),
		"owner":   NullValue(),
		"dims": MapValue(Metadata{
			"w": NumberValue(1),
			"h": NumberValue(2),
		}),
	}

	s, err := m.Encode()
	require.NoError(t, err)

	decoded, err := ParseMetadata(s)
	require.NoError(t, err)
	assert.True(t, m.Equal(decoded))
}

func TestParseMetadata_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "null", "{}"} {
		m, err := ParseMetadata(in)
		require.NoError(t, err, in)
		assert.NotNil(t, m, in)
		assert.Empty(t, m, in)
	}
}

func TestParseMetadata_Kinds(t *testing.T) {
	m, err := ParseMetadata(`{"s":"x","n":3,"b":false,"z":null,"m":{"k":"v"}}`)
	require.NoError(t, err)

	assert.Equal(t, KindString, m["s"].Kind())
	assert.Equal(t, KindNumber, m["n"].Kind())
	assert.Equal(t, KindBool, m["b"].Kind())
	assert.Equal(t, KindNull, m["z"].Kind())
	assert.Equal(t, KindMap, m["m"].Kind())

	n, ok := m["n"].AsNumber()
	assert.True(t, ok)
	assert.Equal(t, 3.0, n)

	nested, ok := m["m"].AsMap()
	require.True(t, ok)
	s, ok := nested["k"].AsString()
	assert.True(t, ok)
	assert.Equal(t, "v", s)
}

func TestParseMetadata_RejectsArrays(t *testing.T) {
	_, err := ParseMetadata(`{"tags":["a","b"]}`)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseMetadata_Malformed(t *testing.T) {
	_, err := ParseMetadata(`{"a":`)
	assert.Error(t, err)

	_, err = ParseMetadata(`42`)
	assert.Error(t, err)
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, NullValue().Equal(Value{}))
	assert.True(t, StringValue("a").Equal(StringValue("a")))
	assert.False(t, StringValue("1").Equal(NumberValue(1)))
	assert.False(t, BoolValue(true).Equal(BoolValue(false)))
	assert.True(t, MapValue(nil).Equal(MapValue(Metadata{})))
}

func TestValue_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Metadata{"n": NumberValue(2), "z": NullValue()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":2,"z":null}`, string(data))
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "null", NullValue().String())
	assert.Equal(t, "1.5", NumberValue(1.5).String())
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "hi", StringValue("hi").String())
	assert.Equal(t, `{"a":"b"}`, MapValue(Metadata{"a": StringValue("b")}).String())
}

func TestParseMetadataValue(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"null", NullValue()},
		{"true", BoolValue(true)},
		{"false", BoolValue(false)},
		{"42", NumberValue(42)},
		{"-0.5", NumberValue(-0.5)},
		{"NaN", StringValue("NaN")},
		{"Inf", StringValue("Inf")},
		{"hello", StringValue("hello")},
		{"", StringValue("")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.True(t, tt.want.Equal(ParseMetadataValue(tt.in)), "got %v", ParseMetadataValue(tt.in))
		})
	}
}

func TestValueKind_String(t *testing.T) {
	assert.Equal(t, "map", KindMap.String())
	assert.Equal(t, "unknown", ValueKind(99).String())
}
