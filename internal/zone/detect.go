package zone

import (
	"regexp"
	"strings"
)

// Detection is regex/scan based on purpose: malformed or unterminated
// constructs simply produce no zone (the region is left unprotected)
// rather than failing. Each rule operates independently over the whole
// string, so zones of different types may overlap.
var (
	codeBlockRe    = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe   = regexp.MustCompile("`[^`\n]+`")
	wikilinkRe     = regexp.MustCompile(`\[\[[^\]\n]*\]\]`)
	markdownLinkRe = regexp.MustCompile(`\[[^\]\n]*\]\([^)\n]*\)`)
	urlRe          = regexp.MustCompile(`https?://[^\s<>]+`)
	hashtagRe      = regexp.MustCompile(`#[A-Za-z0-9_][\w/-]*`)
	htmlTagRe      = regexp.MustCompile(`</?[a-zA-Z][^>\n]*>`)
	commentRe      = regexp.MustCompile(`(?s)%%.*?%%`)
	mathRe         = regexp.MustCompile(`\$[^$\n]+\$`)
)

// Detect scans content once and returns every protected zone, sorted
// ascending by start offset. It never fails; see the package notes on
// malformed input.
func Detect(content string) List {
	var zones List

	if z, ok := detectFrontmatter(content); ok {
		zones = append(zones, z)
	}

	blocks := appendAll(nil, content, codeBlockRe, CodeBlock)
	zones = append(zones, blocks...)

	// Inline code only counts outside fenced blocks; the block zone
	// already covers backticks inside it.
	for _, loc := range inlineCodeRe.FindAllStringIndex(content, -1) {
		if blocks.Overlaps(loc[0], loc[1]) {
			continue
		}
		zones = append(zones, Zone{Start: loc[0], End: loc[1], Type: InlineCode})
	}

	zones = appendAll(zones, content, wikilinkRe, Wikilink)
	zones = appendAll(zones, content, markdownLinkRe, MarkdownLink)
	zones = appendAll(zones, content, urlRe, URL)
	zones = appendAll(zones, content, hashtagRe, Hashtag)
	zones = appendAll(zones, content, htmlTagRe, HTMLTag)
	zones = appendAll(zones, content, commentRe, ObsidianComment)
	zones = appendAll(zones, content, mathRe, Math)

	sortByStart(zones)
	return zones
}

// detectFrontmatter finds a YAML frontmatter zone. Frontmatter is only
// recognized when the content starts with "---" and a closing "\n---"
// exists; an unterminated block yields no zone and stays unprotected.
func detectFrontmatter(content string) (Zone, bool) {
	if !strings.HasPrefix(content, "---") {
		return Zone{}, false
	}
	i := strings.Index(content[3:], "\n---")
	if i < 0 {
		return Zone{}, false
	}
	// Zone covers the closing marker itself.
	end := 3 + i + len("\n---")
	return Zone{Start: 0, End: end, Type: Frontmatter}, true
}

func appendAll(zones List, content string, re *regexp.Regexp, t Type) List {
	for _, loc := range re.FindAllStringIndex(content, -1) {
		zones = append(zones, Zone{Start: loc[0], End: loc[1], Type: t})
	}
	return zones
}
