package debounce_test

import (
	"fmt"
	"time"

	"github.com/matzehuels/cheatsheet/pkg/debounce"
)

func ExampleFunc() {
	done := make(chan struct{})
	search, cancel := debounce.Func(func() {
		fmt.Println("search")
		close(done)
	}, 20*time.Millisecond)
	defer cancel()

	search()
	search()
	search()

	<-done
	// Output: search
}
