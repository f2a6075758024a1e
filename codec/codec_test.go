package codec

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldranol/cssbuild/shape"
)

func TestEncodeSortsMapKeys(t *testing.T) {
	data, err := Encode(map[string]any{"b": 1, "a": 2, "c": 3})
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"b":1,"c":3}`, string(data))
}

func TestRoundTrip(t *testing.T) {
	v := map[string]any{
		"name":   "widget",
		"count":  3.0,
		"active": true,
		"tags":   []any{"a", "b"},
		"nested": map[string]any{"k": "v"},
	}

	data, err := Encode(v)
	require.NoError(t, err)

	got, err := Decode(map[string]any{}, data)
	require.NoError(t, err)

	decoded, ok := got.(*map[string]any)
	require.True(t, ok)
	if diff := cmp.Diff(v, *decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodePrototype(t *testing.T) {
	got, err := Decode(&shape.Rectangle{}, []byte(`{"width":10,"height":20}`))
	require.NoError(t, err)

	rect, ok := got.(*shape.Rectangle)
	require.True(t, ok)
	assert.Equal(t, 10.0, rect.Width)
	assert.Equal(t, 20.0, rect.Height)
	// the decoded value carries the prototype's methods
	assert.Equal(t, 200.0, rect.Area())
}

func TestDecodeDoesNotModifyPrototype(t *testing.T) {
	proto := &shape.Rectangle{Width: 1, Height: 1}
	got, err := Decode(proto, []byte(`{"width":5,"height":6}`))
	require.NoError(t, err)

	assert.Equal(t, 1.0, proto.Width)
	assert.Equal(t, 1.0, proto.Height)
	assert.NotSame(t, proto, got)
}

func TestDecodeValuePrototype(t *testing.T) {
	// a non-pointer prototype works the same way
	got, err := Decode(shape.Rectangle{}, []byte(`{"width":2,"height":3}`))
	require.NoError(t, err)

	rect := got.(*shape.Rectangle)
	assert.Equal(t, 6.0, rect.Area())
}

func TestEncodeCycle(t *testing.T) {
	m := map[string]any{}
	m["self"] = m

	_, err := Encode(m)
	require.ErrorIs(t, err, ErrSerialize)
}

func TestEncodeUnsupportedKind(t *testing.T) {
	_, err := Encode(map[string]any{"f": func() {}})
	require.ErrorIs(t, err, ErrSerialize)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(&shape.Rectangle{}, []byte(`{"width":`))
	require.ErrorIs(t, err, ErrParse)
}

func TestDecodeNilPrototype(t *testing.T) {
	_, err := Decode(nil, []byte(`{}`))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrParse))
}
