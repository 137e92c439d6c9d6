// Package logger はアプリケーション全体で使うslogロガーを構築します。
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New は環境に応じたロガーを返します。
// debugの場合は色付きの人間向けハンドラ、それ以外はJSONハンドラを使います。
func New(w io.Writer, debug bool) *slog.Logger {
	var handler slog.Handler
	if debug {
		handler = NewPrettyHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return slog.New(handler)
}

// Setup は標準出力向けのロガーを生成し、slogのデフォルトに設定します。
func Setup(debug bool) *slog.Logger {
	l := New(os.Stdout, debug)
	slog.SetDefault(l)
	return l
}
