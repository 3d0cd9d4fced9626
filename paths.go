package lib

import (
	"strings"
	"unicode"
)

// JoinPaths склеивает базовый путь, префикс монтирования и сегменты маршрута в один путь
// - пробелы вокруг сегментов отбрасываются, пустые сегменты пропускаются
// - между сегментами ровно один слеш
// - ведущий слеш первого сегмента сохраняется
// - если первый сегмент пустой, а второй начинается со слеша, результат остается абсолютным
// - завершающий слеш ставится только если им заканчивается последний непустой сегмент
func JoinPaths(parts ...string) string {
	lastPart := ""
	for _, part := range parts {
		if trimmed := trimSpace(part); trimmed != "" {
			lastPart = trimmed
		}
	}
	if lastPart == "" {
		return ""
	}

	// пустой BASENAME + абсолютный маршрут: начинаем со второго сегмента, чтобы не потерять ведущий слеш
	segments := parts
	if len(parts) > 1 && trimSpace(parts[0]) == "" && strings.HasPrefix(trimSpace(parts[1]), "/") {
		segments = parts[1:]
	}

	joined := make([]string, 0, len(segments))
	for i, part := range segments {
		part = trimSpace(part)
		if i == 0 {
			part = strings.TrimRight(part, "/")
		} else {
			part = strings.Trim(part, "/")
		}
		if part != "" {
			joined = append(joined, part)
		}
	}

	result := strings.Join(joined, "/")
	if strings.HasSuffix(lastPart, "/") {
		result += "/"
	}

	return result
}

// trimSpace пробельные символы как у trim() в браузере: вместе с BOM (U+FEFF), но без NEL (U+0085)
func trimSpace(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == '\uFEFF' || (r != '\u0085' && unicode.IsSpace(r))
	})
}
