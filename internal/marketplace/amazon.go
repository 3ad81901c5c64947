package marketplace

import "net/url"

const searchBase = "https://www.amazon.co.jp/s"

// SearchURL builds a marketplace search link for a book. An ISBN gives the
// most precise result and takes priority; otherwise the search falls back to
// title plus author, then title alone, scoped to the books category. With no
// usable input the result is the empty string (no link).
func SearchURL(title, author, isbn string) string {
	switch {
	case isbn != "":
		return searchBase + "?k=" + url.QueryEscape(isbn) + "&ref=nb_sb_noss"
	case title != "" && author != "":
		return searchBase + "?k=" + url.QueryEscape(title+" "+author) + "&i=stripbooks&ref=nb_sb_noss"
	case title != "":
		return searchBase + "?k=" + url.QueryEscape(title) + "&i=stripbooks&ref=nb_sb_noss"
	default:
		return ""
	}
}
