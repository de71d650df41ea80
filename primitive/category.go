package primitive

import "strconv"

// CategoryEnum is a bit set of conversion families a converter may apply.
type CategoryEnum int

type ConversionPair struct {
	From, To KindEnum
}

const (
	CategorySafeNumber   CategoryEnum = 1 << iota // int, uint, float without precision loss
	CategoryUnsafeNumber                          // int, uint, float with precision loss, range checked
	CategoryTextNumber                            // int, uint, float <-> string: textual number representation
	CategoryNumericBool                           // int <-> bool: 0, 1 representation of boolean values
	CategoryTextualBool                           // string <-> bool: yes, no, on, off, true, false representation of boolean values
	CategoryDatetime                              // string(RFC3339Nano) <-> time.Time: textual date and time representation
	CategoryTimestamp                             // int(Unix seconds) <-> time.Time: Unix timestamp representation
	CategoryDuration                              // string(2h45m) <-> time.Duration: textual duration representation
	CategoryNanoseconds                           // int(nanoseconds) <-> time.Duration: numerical (integer) duration representation
	CategorySeconds                               // float(seconds) <-> time.Duration: numerical (floating-point) duration representation
	CategoryEnumString                            // string <-> enum: textual representation of an enum type (uses String/IsValid methods)

	CategoryAll  = (1 << iota) - 1 // all categories combined
	CategoryNone = 0               // no categories selected
)

// pairCategory maps each supported conversion pair to the single category enabling it.
var pairCategory = map[ConversionPair]CategoryEnum{}

func init() {
	for pair := range safeNumberConversionPairs() {
		pairCategory[pair] = CategorySafeNumber
	}

	eachKind(KindEnum.IsNumber, func(from KindEnum) {
		eachKind(KindEnum.IsNumber, func(to KindEnum) {
			pair := ConversionPair{from, to}
			if _, ok := pairCategory[pair]; !ok {
				pairCategory[pair] = CategoryUnsafeNumber
			}
		})

		both(from, KindString, CategoryTextNumber)
	})

	eachKind(KindEnum.IsInteger, func(k KindEnum) {
		both(k, KindBool, CategoryNumericBool)
		both(k, KindTime, CategoryTimestamp)

		if k != KindUint64 {
			both(k, KindDuration, CategoryNanoseconds)
		}
	})

	eachKind(KindEnum.IsFloat, func(k KindEnum) {
		both(k, KindDuration, CategorySeconds)
	})

	both(KindString, KindBool, CategoryTextualBool)
	both(KindString, KindTime, CategoryDatetime)
	both(KindString, KindDuration, CategoryDuration)
	both(KindString, KindPrimitiveEnum, CategoryEnumString)
	pairCategory[ConversionPair{KindPrimitiveEnum, KindPrimitiveEnum}] = CategoryEnumString
}

func eachKind(filter func(KindEnum) bool, fn func(KindEnum)) {
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		if filter(k) {
			fn(k)
		}
	}
}

func both(a, b KindEnum, category CategoryEnum) {
	pairCategory[ConversionPair{a, b}] = category
	pairCategory[ConversionPair{b, a}] = category
}

// CategoryOf returns the category enabling pair, or CategoryNone if the pair is never convertible.
func CategoryOf(pair ConversionPair) CategoryEnum {
	return pairCategory[pair]
}

// Allowed reports whether pair is enabled by the allowed categories.
func Allowed(pair ConversionPair, allowed CategoryEnum) bool {
	category := CategoryOf(pair)
	return category != CategoryNone && allowed&category != 0
}

func safeNumberConversionPairs() map[ConversionPair]struct{} {
	pairs := map[ConversionPair]struct{}{
		{KindInt, KindInt}:   {}, // int can be any wide from 32 upto 64
		{KindInt, KindInt64}: {},

		{KindInt8, KindInt}:     {}, // int8 can be safely converted to any signed int
		{KindInt8, KindInt8}:    {},
		{KindInt8, KindInt16}:   {},
		{KindInt8, KindInt32}:   {},
		{KindInt8, KindInt64}:   {},
		{KindInt8, KindFloat32}: {},
		{KindInt8, KindFloat64}: {},

		{KindInt16, KindInt}:     {},
		{KindInt16, KindInt16}:   {}, // int16 omitting narrowing to int8
		{KindInt16, KindInt32}:   {},
		{KindInt16, KindInt64}:   {},
		{KindInt16, KindFloat32}: {},
		{KindInt16, KindFloat64}: {},

		{KindInt32, KindInt}:     {},
		{KindInt32, KindInt32}:   {}, // int32 omitting narrowing to int8/16
		{KindInt32, KindInt64}:   {},
		{KindInt32, KindFloat64}: {}, // int32 is wider than float32 mantissa

		{KindInt64, KindInt64}: {}, // int64 is the widest signed integer type

		{KindUint, KindUint}:   {},
		{KindUint, KindUint64}: {},

		{KindUint8, KindUint}:    {}, // uint8 can be safely converted to any unsigned int
		{KindUint8, KindUint8}:   {},
		{KindUint8, KindUint16}:  {},
		{KindUint8, KindUint32}:  {},
		{KindUint8, KindUint64}:  {},
		{KindUint8, KindInt}:     {}, // also uint8 can be converted to any wider signed int
		{KindUint8, KindInt16}:   {},
		{KindUint8, KindInt32}:   {},
		{KindUint8, KindInt64}:   {},
		{KindUint8, KindFloat32}: {},
		{KindUint8, KindFloat64}: {},

		{KindUint16, KindUint}:    {},
		{KindUint16, KindUint16}:  {}, // uint16 omitting narrowing to uint8
		{KindUint16, KindUint32}:  {},
		{KindUint16, KindUint64}:  {},
		{KindUint16, KindInt}:     {}, // also uint16 can be converted to any wider signed int
		{KindUint16, KindInt32}:   {},
		{KindUint16, KindInt64}:   {},
		{KindUint16, KindFloat32}: {},
		{KindUint16, KindFloat64}: {},

		{KindUint32, KindUint}:    {},
		{KindUint32, KindUint32}:  {},
		{KindUint32, KindUint64}:  {}, // uint32 omitting narrowing to uint8/16
		{KindUint32, KindInt64}:   {}, // also only 64-bit ints are wide enough to hold uint32
		{KindUint32, KindFloat64}: {}, // uint32 is wider than float32 mantissa

		{KindUint64, KindUint64}: {}, // uint64 is the widest unsigned integer type

		{KindFloat32, KindFloat32}: {},
		{KindFloat32, KindFloat64}: {},

		{KindFloat64, KindFloat64}: {},
	}

	// int and uint hold 64-bit values only on 64-bit platforms
	if strconv.IntSize == 64 {
		pairs[ConversionPair{KindInt64, KindInt}] = struct{}{}
		pairs[ConversionPair{KindUint32, KindInt}] = struct{}{}
		pairs[ConversionPair{KindUint64, KindUint}] = struct{}{}
	}

	return pairs
}
