// Package loader collects configuration file paths from locations and hands
// them, as pre-registered file sources, to caller-supplied load logic.
//
// Paths are added in increasing priority: a file added later overrides keys
// from files added earlier. A location that resolves to nothing adds nothing,
// and [Loader.ExcludeNotExists] drops paths that turned out not to exist:
//
//	cfg, err := loader.Load(
//		loader.New().
//			Add(location.FirstSomePath().
//				FromEnv("APP_ROOT_CONFIG").
//				FromHome(filepath.Join(".example_app", "AppConfig.toml"))).
//			ExcludeNotExists().
//			Add(location.FirstSomePath().
//				FromFile(configFile).
//				FromCwdAndParentsExists("AppConfig.toml")),
//		loadAppConfig,
//	)
//
// Errors from building or decoding are returned exactly as the load logic
// reports them. [AsyncLoader] offers the same flow for context-aware
// builders.
package loader
