package usecase

import (
	"context"
	"reflect"
	"strings"

	"github.com/bnema/navkit/internal/domain/entity"
)

// PageLink builds a navigation path one segment at a time.
type PageLink struct {
	navigator *NavigateUseCase
	absolute  bool
	segments  []string
}

// Absolute starts a path that replaces the root page. withNavigation wraps
// the following segments in a navigation container.
func (uc *NavigateUseCase) Absolute(withNavigation bool) *PageLink {
	return newPageLink(uc, true, withNavigation)
}

// Relative starts a path pushed onto the displayed container.
func (uc *NavigateUseCase) Relative(withNavigation bool) *PageLink {
	return newPageLink(uc, false, withNavigation)
}

func newPageLink(uc *NavigateUseCase, absolute, withNavigation bool) *PageLink {
	link := &PageLink{navigator: uc, absolute: absolute}
	if withNavigation {
		link.segments = append(link.segments, NavigationPageName)
	}
	return link
}

// Push appends a segment. params are encoded into the segment's query.
func (l *PageLink) Push(name string, params *entity.Parameters) *PageLink {
	segment := name
	if query := entity.EncodeQuery(params); query != "" {
		segment += entity.QuerySeparator + query
	}
	l.segments = append(l.segments, segment)
	return l
}

// PushFor appends the page named after VM.
func PushFor[VM any](l *PageLink, params *entity.Parameters) *PageLink {
	return l.Push(PageNameFor[VM](PageSuffix), params)
}

// FullPath returns the path built so far.
func (l *PageLink) FullPath() string {
	joined := strings.Join(l.segments, entity.PathSeparator)
	if l.absolute {
		return entity.PathSeparator + joined
	}
	return joined
}

// Navigate follows the built path.
func (l *PageLink) Navigate(ctx context.Context, params *entity.Parameters, opts ...NavigateOption) entity.Result {
	return l.navigator.Navigate(ctx, l.FullPath(), params, opts...)
}

// PageNameFor derives a page or popup type name from a view-model type:
// the "ViewModel" suffix is replaced by suffix.
func PageNameFor[VM any](suffix string) string {
	t := reflect.TypeOf((*VM)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strings.TrimSuffix(t.Name(), "ViewModel") + suffix
}
