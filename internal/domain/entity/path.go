package entity

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// PathSeparator separates segments of a navigation path.
	PathSeparator = "/"
	// QuerySeparator separates a segment name from its query string.
	QuerySeparator = "?"
)

// Segment is one element of a navigation path: a page name plus its own query.
type Segment struct {
	Name     string
	RawQuery string
	// Query holds the decoded query in declaration order. Values are strings.
	Query *Parameters
}

// String reassembles the segment as it would appear in a path.
func (s Segment) String() string {
	if s.RawQuery == "" {
		return s.Name
	}
	return s.Name + QuerySeparator + s.RawQuery
}

// NavigationPath is the parsed form of a path string such as
// "//Tabs/Feed?filter=new/Details".
type NavigationPath struct {
	Raw      string
	Absolute bool
	Segments []Segment
}

// Len returns the number of segments.
func (p NavigationPath) Len() int {
	return len(p.Segments)
}

// Names returns the segment names in order.
func (p NavigationPath) Names() []string {
	names := make([]string, 0, len(p.Segments))
	for _, s := range p.Segments {
		names = append(names, s.Name)
	}
	return names
}

// String reassembles the path. Absolute paths keep a single leading separator.
func (p NavigationPath) String() string {
	parts := make([]string, 0, len(p.Segments))
	for _, s := range p.Segments {
		parts = append(parts, s.String())
	}
	joined := strings.Join(parts, PathSeparator)
	if p.Absolute {
		return PathSeparator + joined
	}
	return joined
}

// ParsePath splits a navigation path into segments.
// Empty entries between separators are dropped, so "//A//B" and "/A/B" are
// equivalent absolute paths. A path is absolute when it starts with a separator.
func ParsePath(path string) (NavigationPath, error) {
	parsed := NavigationPath{
		Raw:      path,
		Absolute: strings.HasPrefix(path, PathSeparator),
	}

	for _, part := range strings.Split(path, PathSeparator) {
		if strings.TrimSpace(part) == "" {
			continue
		}
		segment, err := parseSegment(part)
		if err != nil {
			return NavigationPath{}, fmt.Errorf("parse segment %q: %w", part, err)
		}
		parsed.Segments = append(parsed.Segments, segment)
	}

	if len(parsed.Segments) == 0 {
		return NavigationPath{}, fmt.Errorf("%w: %q", ErrEmptyPath, path)
	}
	return parsed, nil
}

func parseSegment(part string) (Segment, error) {
	name, rawQuery, _ := strings.Cut(part, QuerySeparator)
	name = strings.TrimSpace(name)
	if name == "" {
		return Segment{}, ErrEmptySegmentName
	}

	query, err := ParseQuery(rawQuery)
	if err != nil {
		return Segment{}, err
	}
	return Segment{Name: name, RawQuery: rawQuery, Query: query}, nil
}

// ParseQuery decodes "k1=v1&k2=v2" into ordered string parameters.
// A key without "=" maps to an empty string. A repeated key keeps its first
// position and its last value.
func ParseQuery(rawQuery string) (*Parameters, error) {
	params := NewParameters()
	if rawQuery == "" {
		return params, nil
	}

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %v", ErrMalformedQuery, rawKey, err)
		}
		if key == "" {
			return nil, fmt.Errorf("%w: empty key in %q", ErrMalformedQuery, pair)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("%w: value for %q: %v", ErrMalformedQuery, key, err)
		}
		params.Set(key, value)
	}
	return params, nil
}

// EncodeQuery renders parameters as a query string in insertion order.
// Values are formatted with fmt and escaped.
func EncodeQuery(params *Parameters) string {
	if params.Len() == 0 {
		return ""
	}
	var b strings.Builder
	params.Each(func(key string, value any) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		if value != nil {
			b.WriteString(url.QueryEscape(fmt.Sprint(value)))
		}
	})
	return b.String()
}
