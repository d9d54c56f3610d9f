package commands

import (
	"context"
	"fmt"

	"github.com/barukai/CppSharp/internal/driver"
)

// Backends prints the built-in generator kinds.
func (c *Controller) Backends(ctx context.Context) error {
	for _, kind := range driver.SupportedKinds() {
		fmt.Println(kind)
	}
	return nil
}
