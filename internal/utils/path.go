package utils

import (
	"net/url"
	"strings"
)

// EscapePathPreservingSlashes экранирует каждый сегмент пути, оставляя разделители как есть
func EscapePathPreservingSlashes(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

// MountPath приводит BASENAME к виду префикса роутера: "/name" без завершающего слеша, "" для корня
func MountPath(basename string) string {
	base := strings.Trim(strings.TrimSpace(basename), "/")
	if base == "" {
		return ""
	}
	return "/" + base
}

// NormalizeBasename BASENAME в каноническом виде "/name/", "" для корня ("/" тоже корень)
func NormalizeBasename(basename string) string {
	mount := MountPath(basename)
	if mount == "" {
		return ""
	}
	return mount + "/"
}
