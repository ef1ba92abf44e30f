package article

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// AbsolutizeURLs rewrites relative href/src attributes on link and media
// elements inside sel to absolute URLs resolved against base. A result
// containing a space is wrapped in angle brackets so Markdown renderers treat
// it as one token. Re-running on an already-processed tree is a no-op.
func AbsolutizeURLs(sel *goquery.Selection, base *url.URL) {
	if sel == nil || base == nil {
		return
	}
	sel.Find("a[href], img[src], source[src], audio[src], video[src]").Each(func(_ int, s *goquery.Selection) {
		attr := "src"
		if goquery.NodeName(s) == "a" {
			attr = "href"
		}
		rewriteAttr(s, attr, base)
	})
}

func rewriteAttr(s *goquery.Selection, attr string, base *url.URL) {
	val, ok := s.Attr(attr)
	if !ok || val == "" {
		return
	}
	// Angle brackets mean a previous pass already wrapped this value.
	if strings.HasPrefix(val, "<") {
		return
	}
	abs := resolveRef(base, val)
	if strings.Contains(abs, " ") {
		abs = "<" + abs + ">"
	}
	s.SetAttr(attr, abs)
}

// resolveRef joins ref against base without round-tripping through url.URL:
// glyph-image paths carry literal spaces, which URL.String would re-encode as
// %20 and break downstream token matching.
func resolveRef(base *url.URL, ref string) string {
	switch {
	case hasScheme(ref):
		return ref
	case strings.HasPrefix(ref, "//"):
		return base.Scheme + ":" + ref
	case strings.HasPrefix(ref, "#"), strings.HasPrefix(ref, "?"):
		return base.Scheme + "://" + base.Host + base.Path + ref
	case strings.HasPrefix(ref, "/"):
		return base.Scheme + "://" + base.Host + ref
	default:
		dir := base.Path
		if i := strings.LastIndex(dir, "/"); i >= 0 {
			dir = dir[:i+1]
		} else {
			dir = "/"
		}
		return base.Scheme + "://" + base.Host + dir + ref
	}
}

// hasScheme reports whether ref already starts with a scheme ("https:",
// "mailto:", ...), i.e. a colon before any slash, space or query.
func hasScheme(ref string) bool {
	i := strings.IndexByte(ref, ':')
	if i <= 0 {
		return false
	}
	return !strings.ContainsAny(ref[:i], "/ ?#")
}
