package services

import (
	"path/filepath"
	"regexp"
	"strings"
)

var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".mkv":  {},
	".avi":  {},
	".mov":  {},
	".wmv":  {},
	".flac": {},
	".webm": {},
}

var (
	separatorPattern  = regexp.MustCompile(`[._]+`)
	releaseTagPattern = regexp.MustCompile(`(?i)\b(1080p|720p|2160p|x264|x265|h264|bluray|brrip|web[- ]dl|dvdrip)\b`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// IsVideoFile reports whether name carries one of the recognized video
// extensions. The check is case-insensitive.
func IsVideoFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	_, ok := videoExtensions[ext]
	return ok
}

// IsHiddenName reports whether a file name should be ignored by the library
// scan: dotfiles, editor backups and macOS resource forks.
func IsHiddenName(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~") || strings.HasPrefix(name, "._")
}

// CleanTitle derives a lookup title from a release-style file name. The
// extension is dropped, dots and underscores become spaces, common release
// tags are removed and the remaining whitespace is collapsed. Returns ""
// when nothing usable is left.
func CleanTitle(filename string) string {
	title := strings.TrimSuffix(filename, filepath.Ext(filename))
	title = separatorPattern.ReplaceAllString(title, " ")
	title = releaseTagPattern.ReplaceAllString(title, "")
	title = whitespacePattern.ReplaceAllString(title, " ")
	return strings.TrimSpace(title)
}
