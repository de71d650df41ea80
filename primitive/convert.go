package primitive

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"kvcoding/utils"
)

var (
	ErrConversionNotAllowed = errors.New("conversion is not allowed")
	ErrOverflow             = errors.New("value overflows destination type")
	ErrInvalidValue         = errors.New("value cannot be represented in destination type")
)

var (
	stringerType        = reflect.TypeFor[fmt.Stringer]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	validatorType       = reflect.TypeFor[interface{ IsValid() bool }]()
)

// Convert converts src to dst when the pair of their kinds belongs to one of the allowed categories.
//
// Lossy numeric conversions are range checked: a value that does not fit the destination fails with
// ErrOverflow instead of wrapping around. Text is parsed strictly; unparsable input fails with ErrInvalidValue.
func Convert(src reflect.Value, dst reflect.Type, allowed CategoryEnum) (reflect.Value, error) {
	pair := ConversionPair{FromReflectType(src.Type()), FromReflectType(dst)}
	if !Allowed(pair, allowed) {
		return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrConversionNotAllowed, src.Type(), dst)
	}

	var (
		res reflect.Value
		err error
	)

	switch CategoryOf(pair) {
	case CategorySafeNumber:
		res = src.Convert(dst)
	case CategoryUnsafeNumber:
		res, err = convertNumber(src, dst)
	case CategoryTextNumber:
		if pair.From == KindString {
			res, err = parseNumber(src.String(), dst)
		} else {
			res = reflect.ValueOf(formatNumber(src)).Convert(dst)
		}
	case CategoryNumericBool:
		res, err = convertNumericBool(src, dst, pair)
	case CategoryTextualBool:
		res, err = convertTextualBool(src, dst, pair)
	case CategoryDatetime:
		res, err = convertDatetime(src, dst, pair)
	case CategoryTimestamp:
		res, err = convertTimestamp(src, dst, pair)
	case CategoryDuration:
		res, err = convertDuration(src, dst, pair)
	case CategoryNanoseconds:
		res, err = convertNanoseconds(src, dst, pair)
	case CategorySeconds:
		res, err = convertSeconds(src, dst, pair)
	case CategoryEnumString:
		res, err = convertEnum(src, dst)
	default:
		err = fmt.Errorf("%w: %s to %s", ErrConversionNotAllowed, src.Type(), dst)
	}

	if err != nil {
		return reflect.Value{}, err
	}

	return res, nil
}

func overflow(src reflect.Value, dst reflect.Type) error {
	return fmt.Errorf("%w: %v does not fit %s", ErrOverflow, src.Interface(), dst)
}

func invalid(src any, dst reflect.Type, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %v as %s: %w", ErrInvalidValue, src, dst, cause)
	}

	return fmt.Errorf("%w: %v as %s", ErrInvalidValue, src, dst)
}

func convertNumber(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	from := FromReflectType(src.Type())
	to := FromReflectType(dst)
	zero := reflect.Zero(dst)

	switch {
	case to.IsSigned():
		switch {
		case from.IsSigned():
			if zero.OverflowInt(src.Int()) {
				return reflect.Value{}, overflow(src, dst)
			}
		case from.IsUnsigned():
			if src.Uint() > math.MaxInt64 || zero.OverflowInt(int64(src.Uint())) {
				return reflect.Value{}, overflow(src, dst)
			}
		default:
			half := math.Ldexp(1, to.Bits()-1)
			if f := math.Trunc(src.Float()); math.IsNaN(f) || f < -half || f >= half {
				return reflect.Value{}, overflow(src, dst)
			}
		}
	case to.IsUnsigned():
		switch {
		case from.IsSigned():
			if src.Int() < 0 || zero.OverflowUint(uint64(src.Int())) {
				return reflect.Value{}, overflow(src, dst)
			}
		case from.IsUnsigned():
			if zero.OverflowUint(src.Uint()) {
				return reflect.Value{}, overflow(src, dst)
			}
		default:
			if f := math.Trunc(src.Float()); math.IsNaN(f) || f < 0 || f >= math.Ldexp(1, to.Bits()) {
				return reflect.Value{}, overflow(src, dst)
			}
		}
	default:
		if from.IsFloat() && zero.OverflowFloat(src.Float()) {
			return reflect.Value{}, overflow(src, dst)
		}
	}

	return src.Convert(dst), nil
}

func parseNumber(text string, dst reflect.Type) (reflect.Value, error) {
	to := FromReflectType(dst)
	text = strings.TrimSpace(text)

	var (
		parsed any
		err    error
	)

	switch {
	case to.IsSigned():
		parsed, err = strconv.ParseInt(text, 10, to.Bits())
	case to.IsUnsigned():
		parsed, err = strconv.ParseUint(text, 10, to.Bits())
	default:
		parsed, err = strconv.ParseFloat(text, to.Bits())
	}

	if errors.Is(err, strconv.ErrRange) {
		return reflect.Value{}, fmt.Errorf("%w: %q does not fit %s", ErrOverflow, text, dst)
	}

	if err != nil {
		return reflect.Value{}, invalid(strconv.Quote(text), dst, err)
	}

	return reflect.ValueOf(parsed).Convert(dst), nil
}

func formatNumber(src reflect.Value) string {
	kind := FromReflectType(src.Type())

	switch {
	case kind.IsSigned():
		return strconv.FormatInt(src.Int(), 10)
	case kind.IsUnsigned():
		return strconv.FormatUint(src.Uint(), 10)
	default:
		return strconv.FormatFloat(src.Float(), 'g', -1, kind.Bits())
	}
}

func convertNumericBool(src reflect.Value, dst reflect.Type, pair ConversionPair) (reflect.Value, error) {
	if pair.From == KindBool {
		n := 0
		if src.Bool() {
			n = 1
		}

		return reflect.ValueOf(n).Convert(dst), nil
	}

	var n int64
	if pair.From.IsSigned() {
		n = src.Int()
	} else if src.Uint() <= 1 {
		n = int64(src.Uint())
	} else {
		n = -1
	}

	if !utils.IsInRange(0, n, 1) {
		return reflect.Value{}, invalid(src.Interface(), dst, nil)
	}

	return reflect.ValueOf(n == 1), nil
}

func convertTextualBool(src reflect.Value, dst reflect.Type, pair ConversionPair) (reflect.Value, error) {
	if pair.From == KindBool {
		return reflect.ValueOf(strconv.FormatBool(src.Bool())), nil
	}

	text := strings.ToLower(strings.TrimSpace(src.String()))

	switch {
	case utils.IsOneOf(text, "true", "yes", "on", "1"):
		return reflect.ValueOf(true), nil
	case utils.IsOneOf(text, "false", "no", "off", "0"):
		return reflect.ValueOf(false), nil
	default:
		return reflect.Value{}, invalid(strconv.Quote(src.String()), dst, nil)
	}
}

func convertDatetime(src reflect.Value, dst reflect.Type, pair ConversionPair) (reflect.Value, error) {
	if pair.From == KindTime {
		return reflect.ValueOf(src.Interface().(time.Time).Format(time.RFC3339Nano)), nil
	}

	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(src.String()))
	if err != nil {
		return reflect.Value{}, invalid(strconv.Quote(src.String()), dst, err)
	}

	return reflect.ValueOf(t), nil
}

func convertTimestamp(src reflect.Value, dst reflect.Type, pair ConversionPair) (reflect.Value, error) {
	if pair.From == KindTime {
		return convertNumber(reflect.ValueOf(src.Interface().(time.Time).Unix()), dst)
	}

	seconds, err := convertNumber(src, reflect.TypeFor[int64]())
	if err != nil {
		return reflect.Value{}, err
	}

	return reflect.ValueOf(time.Unix(seconds.Int(), 0).UTC()), nil
}

func convertDuration(src reflect.Value, dst reflect.Type, pair ConversionPair) (reflect.Value, error) {
	if pair.From == KindDuration {
		return reflect.ValueOf(time.Duration(src.Int()).String()), nil
	}

	d, err := time.ParseDuration(strings.TrimSpace(src.String()))
	if err != nil {
		return reflect.Value{}, invalid(strconv.Quote(src.String()), dst, err)
	}

	return reflect.ValueOf(d), nil
}

func convertNanoseconds(src reflect.Value, dst reflect.Type, pair ConversionPair) (reflect.Value, error) {
	if pair.From == KindDuration {
		return convertNumber(reflect.ValueOf(src.Int()), dst)
	}

	ns, err := convertNumber(src, reflect.TypeFor[int64]())
	if err != nil {
		return reflect.Value{}, err
	}

	return reflect.ValueOf(time.Duration(ns.Int())), nil
}

func convertSeconds(src reflect.Value, dst reflect.Type, pair ConversionPair) (reflect.Value, error) {
	if pair.From == KindDuration {
		return reflect.ValueOf(time.Duration(src.Int()).Seconds()).Convert(dst), nil
	}

	ns := src.Float() * float64(time.Second)
	if math.IsNaN(ns) || ns < math.MinInt64 || ns >= math.Ldexp(1, 63) {
		return reflect.Value{}, overflow(src, dst)
	}

	return reflect.ValueOf(time.Duration(ns)), nil
}

// convertEnum goes through the textual form of the value:
// fmt.Stringer or the underlying string on the way out, encoding.TextUnmarshaler or a plain
// string conversion on the way in, then IsValid() when the destination provides it.
func convertEnum(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	var text string

	switch {
	case src.Type() == reflect.TypeFor[string]():
		text = src.String()
	case src.Type().Implements(stringerType):
		text = src.Interface().(fmt.Stringer).String()
	case src.Kind() == reflect.String:
		text = src.String()
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s has no textual form", ErrConversionNotAllowed, src.Type())
	}

	if dst == reflect.TypeFor[string]() {
		return reflect.ValueOf(text), nil
	}

	var res reflect.Value

	switch {
	case reflect.PointerTo(dst).Implements(textUnmarshalerType):
		ptr := reflect.New(dst)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text)); err != nil {
			return reflect.Value{}, invalid(strconv.Quote(text), dst, err)
		}

		res = ptr.Elem()
	case dst.Kind() == reflect.String:
		res = reflect.ValueOf(text).Convert(dst)
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s cannot be parsed from text", ErrConversionNotAllowed, dst)
	}

	if dst.Implements(validatorType) && !res.Interface().(interface{ IsValid() bool }).IsValid() {
		return reflect.Value{}, invalid(strconv.Quote(text), dst, nil)
	}

	return res, nil
}
