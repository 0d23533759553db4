// Package location decides which configuration file path to use.
//
// A [FileLocation] is an ordered chain of candidate sources: an explicit
// path, an environment variable, the home or user config directory, the
// working directory and its ancestors. The first source that yields a path
// wins and the rest are never consulted. Resolution has no side effects
// beyond reading environment variables and stat-ing files.
package location
