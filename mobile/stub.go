//go:build !mobile

// stub.go is compiled in regular builds; the binding itself lives in
// mobile.go and embed.go, which require -tags mobile.
package mobile

// Dummy is an empty exported function so the package can be referenced in
// regular builds.
func Dummy() {}
