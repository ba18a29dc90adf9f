//go:build !forestdebug

package forest

const debugAsserts = false
