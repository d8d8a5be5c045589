package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(s string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(scan("  north field \n"), "Plot id", &out)
	require.NoError(t, err)
	assert.Equal(t, "north field", got)
	assert.Equal(t, "Plot id\n> ", out.String())
}

func TestGetSimpleText_LastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(scan("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(scan(""), "Name?", &out)
	require.True(t, errors.Is(err, io.EOF))
}

func TestGetMultiline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "stops on empty line", input: "a\nb\n\nnot read\n", want: "a\nb"},
		{name: "CRLF", input: "a\r\nb\r\n\r\n", want: "a\nb"},
		{name: "immediate blank", input: "\n", want: ""},
		{name: "EOF without blank line", input: "a\nb", want: "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetMultiline(scan(tt.input), "Notes", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
