// Package web holds the browser client served at the site root.
package web

import "embed"

//go:embed index.html script.js styles.css
var Assets embed.FS
