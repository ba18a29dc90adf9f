//go:build forestdebug

package forest

// debugAsserts enables precondition checks in the traversal hot path.
const debugAsserts = true
