//go:build inlinedebug

package linebox

const debugMode = true
