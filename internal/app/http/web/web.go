// Package web holds the chat page served at / and its assets.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var assets embed.FS

func Index() ([]byte, error) {
	return assets.ReadFile("static/index.html")
}

func Static() http.FileSystem {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
