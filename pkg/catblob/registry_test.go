package catblob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifyCatBlob(t *testing.T) {
	t.Parallel()

	blob := makeRaw(t, "Pepper", sampleTail())
	p := Identify(blob, DetectLimits{})
	assert.Equal(t, "cat_blob", p.ID())

	result, err := p.Parse(blob)
	require.NoError(t, err)
	assert.Equal(t, "Pepper", result.Name)
	assert.Equal(t, NameStart, result.NameOffset)
	assert.Equal(t, len("Pepper")*2, result.NameByteLen)
	assert.False(t, result.Compressed)
	assert.Empty(t, result.Warnings)
}

func TestIdentifyCompressed(t *testing.T) {
	t.Parallel()

	raw := makeRaw(t, "Ginger", sampleTail())
	blob := makeCompressed(t, raw)

	p := Identify(blob, DetectLimits{})
	assert.Equal(t, "cat_blob", p.ID())

	result, err := p.Parse(blob)
	require.NoError(t, err)
	assert.True(t, result.Compressed)
	assert.Equal(t, raw, result.Data)
}

func TestIdentifyUnknownFallback(t *testing.T) {
	t.Parallel()

	blob := []byte{0x01, 0x02, 0x03}
	p := Identify(blob, DetectLimits{})
	assert.Equal(t, "unknown", p.ID())

	result, err := p.Parse(blob)
	require.NoError(t, err)
	assert.Equal(t, "<unknown format>", result.Name)
	assert.Equal(t, -1, result.NameOffset)
	assert.NotEmpty(t, result.Warnings)
}

func TestParserForUnknownID(t *testing.T) {
	t.Parallel()

	p := ParserFor("no_such_format", DetectLimits{})
	assert.Equal(t, "unknown", p.ID())
}
