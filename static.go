package scaler

import (
	"embed"
	"io/fs"
)

//go:embed web/index.html web/css
var web embed.FS

// Pages returns the host page tree (index.html and css/) with web/ stripped.
func Pages() fs.FS {
	sub, err := fs.Sub(web, "web")
	if err != nil {
		panic(err)
	}
	return sub
}
