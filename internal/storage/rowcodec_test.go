package storage

import (
	"math"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/dshills/quantaplan/internal/sql/types"
)

var mixedColumns = []Column{
	{Name: "i", Type: types.Integer, Nullable: true},
	{Name: "b", Type: types.Boolean, Nullable: true},
	{Name: "d", Type: types.Double, Nullable: true},
	{Name: "s", Type: types.Text, Nullable: true},
}

func TestRowCodecRoundTrip(t *testing.T) {
	codec := NewRowCodec(mixedColumns)

	rows := [][]types.Value{
		{types.NewIntegerValue(-42), types.NewBooleanValue(true), types.NewDoubleValue(math.Pi), types.NewTextValue("héllo")},
		{types.NewIntegerValue(math.MaxInt64), types.NewBooleanValue(false), types.NewDoubleValue(-0.5), types.NewTextValue("")},
		types.NullRow(4),
	}
	for _, row := range rows {
		data, err := codec.Encode(row)
		require.NoError(t, err)

		got, err := codec.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, row, got)
	}
}

func TestRowCodecOmitsNulls(t *testing.T) {
	codec := NewRowCodec(mixedColumns)

	data, err := codec.Encode(types.NullRow(4))
	require.NoError(t, err)
	assert.Empty(t, data)

	data, err = codec.Encode([]types.Value{types.NewNullValue(), types.NewNullValue(), types.NewNullValue(), types.NewTextValue("x")})
	require.NoError(t, err)
	num, typ, _ := protowire.ConsumeTag(data)
	assert.Equal(t, protowire.Number(4), num)
	assert.Equal(t, protowire.BytesType, typ)
}

func TestRowCodecRejectsCorruptInput(t *testing.T) {
	codec := NewRowCodec(mixedColumns)

	tests := map[string][]byte{
		"field past width": protowire.AppendVarint(protowire.AppendTag(nil, 9, protowire.VarintType), 1),
		"wrong wire type":  protowire.AppendVarint(protowire.AppendTag(nil, 4, protowire.VarintType), 1),
		"truncated":        protowire.AppendTag(nil, 3, protowire.Fixed64Type),
		"bad tag":          {0xff},
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decode(data)
			assert.True(t, errors.Is(err, ErrCorruptRow), "got %v", err)
		})
	}
}

func TestRowCodecWidthMismatch(t *testing.T) {
	_, err := NewRowCodec(mixedColumns).Encode([]types.Value{types.NewIntegerValue(1)})
	assert.True(t, errors.Is(err, ErrRowWidth))
}

func TestFrameCodec(t *testing.T) {
	fc := newFrameCodec(Options{Compression: CompressionLZ4, CompressionMinSize: 8})

	small := []byte("abc")
	frame, err := fc.pack(small)
	require.NoError(t, err)
	assert.Equal(t, frameRaw, frame[0])

	big := []byte(strings.Repeat("abcdefgh", 64))
	frame, err = fc.pack(big)
	require.NoError(t, err)
	assert.Equal(t, frameLZ4, frame[0])
	assert.Less(t, len(frame), len(big))

	out, err := fc.unpack(frame)
	require.NoError(t, err)
	assert.Equal(t, big, out)

	_, err = fc.unpack([]byte{7})
	assert.True(t, errors.Is(err, ErrCorruptRow))
	_, err = fc.unpack(nil)
	assert.True(t, errors.Is(err, ErrCorruptRow))
}

func TestParseCompressionType(t *testing.T) {
	c, err := ParseCompressionType("lz4")
	require.NoError(t, err)
	assert.Equal(t, CompressionLZ4, c)
	assert.Equal(t, "lz4", c.String())

	c, err = ParseCompressionType("LZ4")
	require.NoError(t, err)
	assert.Equal(t, CompressionLZ4, c)

	c, err = ParseCompressionType("")
	require.NoError(t, err)
	assert.Equal(t, CompressionNone, c)

	_, err = ParseCompressionType("zstd")
	assert.Error(t, err)
}
