package commands

import "context"

// Generate runs one generation pass over the configured project.
func (c *Controller) Generate(ctx context.Context) error {
	return c.runGeneration()
}
