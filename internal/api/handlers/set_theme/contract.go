package set_theme

import "context"

type SessionService interface {
	SetTheme(ctx context.Context, token, theme string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
