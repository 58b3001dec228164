package locate

import "github.com/mcdonaldj/gitorade/internal/ports"

// Cache remembers the outcome of the first discovery for the lifetime of
// the process, so repeat commits do not re-spawn the version query. The
// outcome is cached whether it succeeded or failed; Invalidate is the
// only way to force re-discovery.
type Cache struct {
	resolver ports.PathResolver
	runner   ports.CommandRunner

	populated bool
	bin       GitBinary
	err       error
}

// NewCache creates a cache that discovers git with the given capabilities.
func NewCache(resolver ports.PathResolver, runner ports.CommandRunner) *Cache {
	return &Cache{resolver: resolver, runner: runner}
}

// Git returns the cached binary, discovering it on the first call.
func (c *Cache) Git() (GitBinary, error) {
	if !c.populated {
		c.bin, c.err = Git(c.resolver, c.runner)
		c.populated = true
	}
	return c.bin, c.err
}

// Invalidate discards the cached outcome; the next Git call re-discovers.
func (c *Cache) Invalidate() {
	c.populated = false
	c.bin = GitBinary{}
	c.err = nil
}
