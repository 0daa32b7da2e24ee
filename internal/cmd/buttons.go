package cmd

import (
	"fmt"

	"github.com/padbind/padbind/button"
)

// Buttons prints every virtual button name usable in a bindings file.
type Buttons struct{}

func (c *Buttons) Run() error {
	for _, b := range button.All() {
		fmt.Println(b.String())
	}
	return nil
}
