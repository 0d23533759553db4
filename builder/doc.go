// Package builder registers configuration sources in priority order on top of
// koanf.
//
// A [Builder] holds an ordered list of [Source] layers: files (YAML, JSON or
// TOML, picked by extension), environment variables and in-memory maps.
// [Builder.Build] merges them into a *koanf.Koanf, later layers overriding
// earlier ones. [AsyncBuilder] does the same for callers that need
// context-aware loading.
//
// Parsing, merging and decoding are koanf's job; this package only decides
// what gets loaded and in which order.
package builder
