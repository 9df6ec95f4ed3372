package storage

import (
	"math"

	"github.com/cockroachdb/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/dshills/quantaplan/internal/sql/types"
)

var (
	// ErrRowWidth is returned when a row does not match the table width.
	ErrRowWidth = errors.New("row width does not match table")
	// ErrCorruptRow is returned when a stored row cannot be decoded.
	ErrCorruptRow = errors.New("corrupt row")
)

// RowCodec serializes rows as protobuf wire messages.
// Column i is field i+1; NULL cells are not written.
type RowCodec struct {
	columns []Column
}

// NewRowCodec creates a codec for the given column layout.
func NewRowCodec(columns []Column) *RowCodec {
	return &RowCodec{columns: columns}
}

// Encode serializes a full-width row.
func (c *RowCodec) Encode(row []types.Value) ([]byte, error) {
	if len(row) != len(c.columns) {
		return nil, errors.Wrapf(ErrRowWidth, "expected %d values, got %d", len(c.columns), len(row))
	}

	var buf []byte
	for i, v := range row {
		if v.IsNull() {
			continue
		}
		num := protowire.Number(i + 1)
		col := c.columns[i]

		switch col.Type.ID() {
		case types.TypeIDInteger:
			n, err := v.AsInt()
			if err != nil {
				return nil, errors.Wrapf(err, "column %q", col.Name)
			}
			buf = protowire.AppendTag(buf, num, protowire.VarintType)
			buf = protowire.AppendVarint(buf, protowire.EncodeZigZag(n))
		case types.TypeIDBoolean:
			b, err := v.AsBool()
			if err != nil {
				return nil, errors.Wrapf(err, "column %q", col.Name)
			}
			buf = protowire.AppendTag(buf, num, protowire.VarintType)
			buf = protowire.AppendVarint(buf, protowire.EncodeBool(b))
		case types.TypeIDDouble:
			f, err := v.AsDouble()
			if err != nil {
				return nil, errors.Wrapf(err, "column %q", col.Name)
			}
			buf = protowire.AppendTag(buf, num, protowire.Fixed64Type)
			buf = protowire.AppendFixed64(buf, math.Float64bits(f))
		case types.TypeIDText:
			s, err := v.AsString()
			if err != nil {
				return nil, errors.Wrapf(err, "column %q", col.Name)
			}
			buf = protowire.AppendTag(buf, num, protowire.BytesType)
			buf = protowire.AppendString(buf, s)
		default:
			return nil, errors.Newf("column %q has unsupported type %s", col.Name, col.Type.Name())
		}
	}
	return buf, nil
}

// Decode reverses Encode. Absent fields come back as NULL.
func (c *RowCodec) Decode(data []byte) ([]types.Value, error) {
	row := types.NullRow(len(c.columns))

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, errors.Wrap(ErrCorruptRow, protowire.ParseError(n).Error())
		}
		data = data[n:]

		pos := int(num) - 1
		if pos < 0 || pos >= len(c.columns) {
			return nil, errors.Wrapf(ErrCorruptRow, "field %d outside row of width %d", num, len(c.columns))
		}
		col := c.columns[pos]

		v, m, err := decodeCell(col, typ, data)
		if err != nil {
			return nil, err
		}
		row[pos] = v
		data = data[m:]
	}
	return row, nil
}

func decodeCell(col Column, typ protowire.Type, data []byte) (types.Value, int, error) {
	want := wireType(col.Type)
	if typ != want {
		return types.Value{}, 0, errors.Wrapf(ErrCorruptRow, "column %q: wire type %d, want %d", col.Name, typ, want)
	}

	switch col.Type.ID() {
	case types.TypeIDInteger:
		x, n := protowire.ConsumeVarint(data)
		if n < 0 {
			return types.Value{}, 0, errors.Wrap(ErrCorruptRow, protowire.ParseError(n).Error())
		}
		return types.NewIntegerValue(protowire.DecodeZigZag(x)), n, nil
	case types.TypeIDBoolean:
		x, n := protowire.ConsumeVarint(data)
		if n < 0 {
			return types.Value{}, 0, errors.Wrap(ErrCorruptRow, protowire.ParseError(n).Error())
		}
		return types.NewBooleanValue(protowire.DecodeBool(x)), n, nil
	case types.TypeIDDouble:
		x, n := protowire.ConsumeFixed64(data)
		if n < 0 {
			return types.Value{}, 0, errors.Wrap(ErrCorruptRow, protowire.ParseError(n).Error())
		}
		return types.NewDoubleValue(math.Float64frombits(x)), n, nil
	case types.TypeIDText:
		s, n := protowire.ConsumeString(data)
		if n < 0 {
			return types.Value{}, 0, errors.Wrap(ErrCorruptRow, protowire.ParseError(n).Error())
		}
		return types.NewTextValue(s), n, nil
	}
	return types.Value{}, 0, errors.Wrapf(ErrCorruptRow, "column %q has unsupported type %s", col.Name, col.Type.Name())
}

func wireType(t types.DataType) protowire.Type {
	switch t.ID() {
	case types.TypeIDDouble:
		return protowire.Fixed64Type
	case types.TypeIDText:
		return protowire.BytesType
	default:
		return protowire.VarintType
	}
}
