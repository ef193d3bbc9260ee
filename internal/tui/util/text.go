package util

import (
    "strings"
    "unicode"
)

// Ellipsize shortens s to at most limit runes, cutting at the last whitespace
// boundary when there is one and appending "…". The ellipsis counts toward limit.
func Ellipsize(s string, limit int) string {
    r := []rune(s)
    if limit <= 0 || len(r) <= limit {
        return s
    }
    if limit == 1 {
        return "…"
    }
    return wordSafeTrim(s, limit-1) + "…"
}

// wordSafeTrim returns a version of s that does not exceed limit runes by
// cutting at the last whitespace boundary before limit. If no boundary exists,
// falls back to hard truncation at the limit. Leading/trailing whitespace from
// the cut result is removed.
func wordSafeTrim(s string, limit int) string {
    r := []rune(s)
    if limit <= 0 || len(r) <= limit {
        return s
    }
    boundary := -1
    for i := 0; i <= limit && i < len(r); i++ {
        if unicode.IsSpace(r[i]) {
            boundary = i
        }
    }
    if boundary > 0 {
        return strings.TrimSpace(string(r[:boundary]))
    }
    return hardTruncate(s, limit)
}

// hardTruncate returns s cut to at most limit runes.
func hardTruncate(s string, limit int) string {
    r := []rune(s)
    if limit <= 0 || len(r) <= limit {
        return s
    }
    return string(r[:limit])
}
