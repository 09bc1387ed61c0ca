// SPDX-License-Identifier: MIT

package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/logging"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"info", zapcore.InfoLevel},
		{"DEBUG", zapcore.DebugLevel},
		{" warn ", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"trace", zapcore.Level(-2)},
	}
	for _, tc := range cases {
		got, err := logging.ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	_, err := logging.ParseLevel("loud")
	require.ErrorIs(t, err, logging.ErrInvalidLevel)
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.NewWithWriter(&buf, "info", logging.FormatJSON)
	require.NoError(t, err)

	log.Info("run finished", "participants", 6)
	log.V(logging.DEBUG).Info("hidden at info level")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "run finished", entry["msg"])
	require.EqualValues(t, 6, entry["participants"])
}

func TestNewWithWriter_Verbosity(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.NewWithWriter(&buf, "debug", logging.FormatConsole)
	require.NoError(t, err)

	log.V(logging.DEBUG).Info("debug line")
	log.V(logging.TRACE).Info("trace line")

	require.Contains(t, buf.String(), "debug line")
	require.NotContains(t, buf.String(), "trace line")
}

func TestNewWithWriter_Errors(t *testing.T) {
	_, err := logging.NewWithWriter(&bytes.Buffer{}, "info", "xml")
	require.ErrorIs(t, err, logging.ErrInvalidFormat)

	_, err = logging.New("nope", "json")
	require.ErrorIs(t, err, logging.ErrInvalidLevel)
}

func TestDiscard(t *testing.T) {
	log := logging.Discard()
	log.Info("dropped")
	require.False(t, log.Enabled())
}
