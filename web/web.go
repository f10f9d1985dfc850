// Package web carries the embedded single-page UI.
package web

import "embed"

//go:embed static
var Assets embed.FS
