package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goodsign/monday"
)

func MakeTemplateFuncmap(locale string) template.FuncMap {
	return template.FuncMap{
		"imageURL": ImageURL,
		"infoURL":  InfoURL,
		"pageURL":  PageURL,
		"randomURL": func(base, prefix string, timer int) string {
			return ActionURL(base, "random", "", prefix, timer)
		},
		"actionURL":   ActionURL,
		"formatTimer": FormatTimer,
		"jsString":    JSString,
		"displayDate": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return DisplayDate(*t, locale)
		},
	}
}

// EscapePath escapes every segment of a slash separated path.
func EscapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func ImageURL(base, src string) string {
	return base + "/img/" + EscapePath(src)
}

func InfoURL(base, src string) string {
	return base + "/info/" + EscapePath(src)
}

// NavigationQuery encodes the navigation context; empty values are left
// out.
func NavigationQuery(img, prefix string, timer int) string {
	params := url.Values{}
	if img != "" {
		params.Set("img", img)
	}
	if prefix != "" {
		params.Set("prefix", prefix)
	}
	if timer > 0 {
		params.Set("timer", strconv.Itoa(timer))
	}
	return params.Encode()
}

func withQuery(endpoint, query string) string {
	if query == "" {
		return endpoint
	}
	return endpoint + "?" + query
}

// PageURL is the bookmarkable page URL of a navigation context. An empty
// base addresses the site root.
func PageURL(base, img, prefix string, timer int) string {
	endpoint := base
	if endpoint == "" {
		endpoint = "/"
	}
	return withQuery(endpoint, NavigationQuery(img, prefix, timer))
}

// ActionURL addresses the random, next and prev fragment endpoints.
func ActionURL(base, action, img, prefix string, timer int) string {
	return withQuery(base+"/"+action, NavigationQuery(img, prefix, timer))
}

func FormatTimer(seconds int) string {
	minutes, secs := seconds/60, seconds%60
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, secs)
	}
	return fmt.Sprintf("%ds", secs)
}

// JSString quotes s as a JavaScript string literal.
func JSString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}

// DisplayDate formats t in the long date layout of locale, falling back to
// en_US for unknown locales.
func DisplayDate(t time.Time, locale string) string {
	loc := monday.Locale(locale)
	layout, ok := monday.LongFormatsByLocale[loc]
	if !ok {
		loc = monday.LocaleEnUS
		layout = monday.LongFormatsByLocale[loc]
	}

	return monday.Format(t, layout+" 15:04", loc)
}
