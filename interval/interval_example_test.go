package interval_test

import (
	"fmt"
	"slices"

	"github.com/crystalix007/centered-intervals/interval"
)

type booking struct {
	Room     string
	From, To int64
}

func Example() {
	bookings := []booking{
		{Room: "first", From: 1, To: 5},
		{Room: "second", From: 7, To: 10},
		{Room: "third", From: 1, To: 2},
	}

	tree, err := interval.New(
		bookings,
		func(b booking) int64 { return b.From },
		func(b booking) int64 { return b.To },
		func(b booking) int64 { return (b.From + b.To) / 2 },
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	matches, ok := tree.Query(2)

	fmt.Printf("Found containing values: %t\n", ok)

	if ok {
		rooms := make([]string, 0, len(matches))
		for _, b := range matches {
			rooms = append(rooms, b.Room)
		}

		// Order is non-determinate.
		slices.Sort(rooms)

		fmt.Printf("Values: %v", rooms)
	}

	// Output:
	// Found containing values: true
	// Values: [first third]
}

func ExampleFromIntervals() {
	tree, err := interval.FromIntervals[int64]([]interval.Range[int64]{
		{Lo: 5, Hi: 10},
		{Lo: 1, Hi: 3},
		{Lo: 15, Hi: 20},
		{Lo: 30, Hi: 31},
		{Lo: 7, Hi: 16},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	matches, _ := tree.Query(9)

	slices.SortFunc(matches, func(a, b interval.Range[int64]) int {
		return int(a.Lo - b.Lo)
	})

	fmt.Println(matches)

	// Output:
	// [{5 10} {7 16}]
}
