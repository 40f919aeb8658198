package zapxlog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

// renderEvent folds an entry and its fields into one message string:
// the primary message followed by a deterministic "{k=v, k=v}" block in
// field order. An entry with neither message nor fields falls back to
// its logger name.
func renderEvent(ent zapcore.Entry, bound, fields []zapcore.Field) string {
	var b strings.Builder
	b.WriteString(ent.Message)

	total := len(bound) + len(fields)
	if total > 0 {
		wrote := 0
		for _, f := range bound {
			wrote = appendField(&b, f, wrote)
		}
		for _, f := range fields {
			wrote = appendField(&b, f, wrote)
		}
		if wrote > 0 {
			b.WriteByte('}')
		}
	}

	if b.Len() == 0 {
		return ent.LoggerName
	}
	return b.String()
}

func appendField(b *strings.Builder, f zapcore.Field, wrote int) int {
	if f.Type == zapcore.SkipType {
		return wrote
	}
	if wrote == 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('{')
	} else {
		b.WriteString(", ")
	}
	b.WriteString(f.Key)
	b.WriteByte('=')
	b.WriteString(fieldValue(f))
	return wrote + 1
}

// fieldValue renders the primitive field kinds directly and falls back
// to debug formatting for everything else.
func fieldValue(f zapcore.Field) string {
	switch f.Type {
	case zapcore.BoolType:
		return strconv.FormatBool(f.Integer == 1)
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
		zapcore.DurationType:
		return strconv.FormatInt(f.Integer, 10)
	case zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type,
		zapcore.UintptrType:
		return strconv.FormatUint(uint64(f.Integer), 10)
	case zapcore.Float64Type:
		return strconv.FormatFloat(math.Float64frombits(uint64(f.Integer)), 'g', -1, 64)
	case zapcore.Float32Type:
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(f.Integer))), 'g', -1, 32)
	case zapcore.StringType:
		return f.String
	case zapcore.ErrorType:
		if err, ok := f.Interface.(error); ok {
			return err.Error()
		}
		return fmt.Sprintf("%v", f.Interface)
	case zapcore.StringerType:
		if s, ok := f.Interface.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("%v", f.Interface)
	default:
		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		return fmt.Sprintf("%v", enc.Fields[f.Key])
	}
}
