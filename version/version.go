// Package version exposes the version of the module,
// printed by the command line tool.
package version

import (
	"fmt"
)

const (
	Version = "0.50"
)

// VersionString is used as banner by the command line tool.
var VersionString = fmt.Sprintf("Go-WebStyle %s", Version)
