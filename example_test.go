package titlecase_test

import (
	"fmt"

	"github.com/az-ai-labs/titlecase"
)

func ExampleTitle() {
	fmt.Println(titlecase.Title("ǆungla"))
	fmt.Println(titlecase.Title("ﬄange"))
	// Output:
	// ǅungla
	// Fflange
}

func ExampleTitleTrAz() {
	fmt.Println(titlecase.Title("istanbul"))
	fmt.Println(titlecase.TitleTrAz("istanbul"))
	// Output:
	// Istanbul
	// İstanbul
}

func ExampleExpand() {
	for r := range titlecase.Expand('ﬄ') {
		fmt.Printf("%c ", r)
	}
	// Output: F f l
}

func ExampleIs() {
	fmt.Println(titlecase.Is('ǅ'))
	fmt.Println(titlecase.Is('Ǆ'))
	fmt.Println(titlecase.Is('İ'))
	// Output:
	// true
	// false
	// true
}
