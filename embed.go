// embed.go must stay in the module root: //go:embed only reaches files in
// the declaring package directory and below.
package main

import "embed"

//go:embed data/config.yaml data/fireworks.xml data/finale.yaml
var dataFS embed.FS
