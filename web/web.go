// Package web embeds the static front-end so the server ships as one binary.
package web

import "embed"

// FS holds the front-end assets under static/, embedded at compile time.
// The handler mounts it at /static/.
//
//go:embed static
var FS embed.FS
