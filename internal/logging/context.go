package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// Field names shared by every navkit log line.
const (
	FieldComponent = "component"
	FieldPageID    = "page_id"
	FieldPath      = "nav_path"
	FieldPopup     = "popup"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags later log lines with the subsystem that wrote them.
func WithComponent(ctx context.Context, component string) context.Context {
	return withField(ctx, FieldComponent, component)
}

// WithPageID tags later log lines with a page instance.
func WithPageID(ctx context.Context, pageID string) context.Context {
	return withField(ctx, FieldPageID, pageID)
}

// WithPath tags later log lines with the navigation path being followed.
func WithPath(ctx context.Context, path string) context.Context {
	return withField(ctx, FieldPath, path)
}

// WithPopup tags later log lines with a popup name.
func WithPopup(ctx context.Context, name string) context.Context {
	return withField(ctx, FieldPopup, name)
}

func withField(ctx context.Context, key, value string) context.Context {
	if value == "" {
		return ctx
	}
	logger := FromContext(ctx).With().Str(key, value).Logger()
	return logger.WithContext(ctx)
}
