package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestInitAndGet(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	l := Init(Options{Level: "debug", Output: &buf})
	l.Debug().Msg("hello")
	require.Contains(t, buf.String(), "hello")

	// 第二次 Init 不生效，仍用同一個 logger
	l2 := Init(Options{Level: "error"})
	l2.Debug().Msg("again")
	require.Contains(t, buf.String(), "again")

	require.Equal(t, l, Get())
}

func TestGetBeforeInit(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	// 未初始化時 Get 退回預設 logger，不 panic
	require.NotPanics(t, func() {
		l := Get()
		l.Info().Msg("ok")
	})
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	require.Equal(t, zerolog.DebugLevel, parseLevel("Debug"))
	require.Equal(t, zerolog.InfoLevel, parseLevel("info"))
	require.Equal(t, zerolog.WarnLevel, parseLevel("warning"))
	require.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	require.Equal(t, zerolog.InfoLevel, parseLevel(""))
	require.Equal(t, zerolog.InfoLevel, parseLevel("bogus"))
}
