// Package web serves the embedded school activities front-end.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Handler serves the front-end files. Mount it under /static/ with a
// StripPrefix so index.html resolves at /static/index.html.
func Handler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static is embedded at compile time; this cannot fail at runtime
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
