package conformance

import (
	"os"
	"regexp"
	"testing"
	"time"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func chtimes(path string, t time.Time) error {
	return os.Chtimes(path, t, t)
}

func mustCompile(t *testing.T, pattern string) *regexp.Regexp {
	t.Helper()
	re, err := regexp.Compile(pattern)
	if err != nil {
		t.Fatalf("compiling pattern %q: %v", pattern, err)
	}
	return re
}
