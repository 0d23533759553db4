// Package overlay layers typed values on top of a decoded configuration
// struct. It is meant for loader.Target implementations that combine the
// resolved files with environment variables or compiled-in defaults.
//
// A typical Load implementation decodes the built configuration, then calls
// [Defaults], [Env] and [Override] in that order.
package overlay
