package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_PrintsTable(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"0", "0", "4", "6"}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, ""+
		"name  | x | y\n"+
		"begin | 6 | 4\n"+
		"end   | 0 | 0\n"+
		"mid   | 4 | 6\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_NegativeCoordinatesAfterDashes(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--", "-1", "2", "3", "-4"}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	// begin = New(3, -4) -> x=-4 y=3, end = New(-1, 2) -> x=2 y=-1
	// mid = New(2+(-4), -1+3) = New(-2, 2) -> x=2 y=-2
	assert.Equal(t, ""+
		"name  |  x |  y\n"+
		"begin | -4 |  3\n"+
		"end   |  2 | -1\n"+
		"mid   |  2 | -2\n", stdout.String())
}

func TestRun_Language(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-lang", "de", "1000", "0", "0", "2000"}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "2.000")
	assert.Contains(t, stdout.String(), "1.000")
}

func TestRun_DebugLogsToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-log-level", "debug", "-log-format", "json", "1", "2", "3", "4"}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr.String(), `"msg":"built segment"`)
	assert.Contains(t, stderr.String(), `"msg":"computed midpoint"`)
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"too few", []string{"1", "2", "3"}, "expected four coordinates"},
		{"too many", []string{"1", "2", "3", "4", "5"}, "expected four coordinates"},
		{"not a number", []string{"1", "two", "3", "4"}, "invalid coordinate"},
		{"bad level", []string{"-log-level", "loud", "1", "2", "3", "4"}, "unknown log level"},
		{"bad format", []string{"-log-format", "xml", "1", "2", "3", "4"}, "unknown log type"},
		{"bad language", []string{"-lang", "!!", "1", "2", "3", "4"}, "invalid language"},
		{"unknown flag", []string{"-nope", "1", "2", "3", "4"}, "flag provided but not defined"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tc.args, &stdout, &stderr)

			assert.Equal(t, exitUsage, code)
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), tc.want)
		})
	}
}
