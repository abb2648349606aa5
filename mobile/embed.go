//go:build mobile

// embed.go declares the mobile build's data files. They are copied next to
// this file before building:
//
//	mkdir -p mobile/data && cp data/config.yaml data/fireworks.xml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/config.yaml data/fireworks.xml
var dataFS embed.FS
