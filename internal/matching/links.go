package matching

import (
	"regexp"
	"strings"
)

// JobBoardBaseURL is the listing page each result card links to.
const JobBoardBaseURL = "https://jobgether.com/remote-jobs/"

var (
	nonSlugChars = regexp.MustCompile(`[^\w\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	hyphens      = regexp.MustCompile(`-+`)
)

// Slug converts a job title into the lower-case, hyphenated form used in job-board URLs.
func Slug(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = nonSlugChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	return hyphens.ReplaceAllString(s, "-")
}

// JobBoardURL returns the remote-jobs listing URL for a job title.
func JobBoardURL(title string) string {
	return JobBoardBaseURL + Slug(title)
}
