package commands

import (
	"github.com/MKhiriev/go-config-load/internal/logger"
	"github.com/MKhiriev/go-config-load/loader"
	"github.com/MKhiriev/go-config-load/location"
)

// chainOptions describes the two location chains every command resolves.
type chainOptions struct {
	configFile  string
	envVar      string
	homePath    string
	name        string
	keepMissing bool
}

// newLoader builds the loader for the user file (env var, then home
// directory) followed by the project file (explicit, then cwd and parents).
func (a *app) newLoader(log *logger.Logger) *loader.Loader {
	l := loader.New(loader.WithLogger(log.Logger), loader.WithSystem(a.sys)).
		Add(location.NewFileLocation(a.sys).
			FromEnv(a.chain.envVar).
			FromHome(a.chain.homePath))

	// An empty or stale override must not make the user file mandatory.
	if !a.chain.keepMissing {
		l.ExcludeNotExists()
	}

	return l.Add(location.NewFileLocation(a.sys).
		FromFile(a.chain.configFile).
		FromCwdAndParentsExists(a.chain.name))
}
