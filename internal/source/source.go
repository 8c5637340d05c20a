package source

import (
	"time"

	"github.com/Makepad-fr/postview/internal/view"
)

// Open picks the source for a configuration: a file path wins over a URL.
func Open(url, file string, timeout time.Duration) view.Loader {
	if file != "" {
		return NewFile(file)
	}
	if url == "" {
		url = DefaultURL
	}
	return NewHTTP(url, nil, timeout)
}

// Describe names a loader for logs and the status line.
func Describe(l view.Loader) string {
	switch s := l.(type) {
	case *HTTP:
		return s.URL()
	case *File:
		return s.Path()
	default:
		return "custom"
	}
}
