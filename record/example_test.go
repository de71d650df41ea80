package record_test

import (
	"errors"
	"fmt"
	"slices"

	"kvcoding/coding"
	"kvcoding/props"
	"kvcoding/record"
)

type Product struct {
	SKU   string  `json:"sku"`
	Price float64 `json:"price"`
	Units int     `json:"units"`
}

func (p Product) Value() float64 { return p.Price * float64(p.Units) }

func (p *Product) ComputedFields() []string { return []string{"Value"} }

func Example() {
	r := record.Must(record.New(&Product{SKU: "A-100", Price: 2.5, Units: 4}))

	fmt.Println(r.Keys())
	fmt.Println(r.TryGetValue("value"))

	err := r.Set("value", 1.0)
	fmt.Println(errors.Is(err, coding.ErrReadOnlyField))

	_ = r.Set("units", 2)
	fmt.Println(r.TryGetValue("Value"))

	// Output:
	// [sku price units Value]
	// 10 true
	// true
	// 5 true
}

func ExampleRecord_Remove() {
	bag := props.New(map[string]any{"id": 1, "name": "widget"})
	bag.Lock("id")

	r := record.Must(record.New(bag))

	removed, err := r.Remove("name")
	fmt.Println(removed, err)

	removed, err = r.Remove("id")
	fmt.Println(removed, errors.Is(err, coding.ErrReadOnlyField))

	keys := r.Keys()
	slices.Sort(keys)
	fmt.Println(keys)

	// Output:
	// true <nil>
	// false true
	// [id]
}
