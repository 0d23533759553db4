package main

import (
	"os"

	"github.com/MKhiriev/go-config-load/cmd/configload/commands"
	"github.com/MKhiriev/go-config-load/internal/buildinfo"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := commands.Execute(buildinfo.New(buildVersion, buildDate, buildCommit)); err != nil {
		os.Exit(1)
	}
}
