package commands_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/spf13/viper"

	"github.com/idelchi/bananapeel/internal/commands"
	"github.com/idelchi/bananapeel/internal/config"
)

var keyLine = regexp.MustCompile(`(?m)^Key: (\S+)$`)

// run executes the CLI with args and stdin, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	viper.Reset()
	t.Cleanup(viper.Reset)

	root := commands.NewRootCommand(&config.Config{}, "test")
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestEncodeDecode(t *testing.T) {
	const plaintext = "encoded through the command line"

	chunks, stderr, err := run(t, plaintext, "encode", "--preset", "md5")
	if err != nil {
		t.Fatalf("encode error: %v (stderr %q)", err, stderr)
	}

	for _, line := range strings.Fields(chunks) {
		if len(line) != 32 {
			t.Errorf("md5 preset produced chunk of length %d: %q", len(line), line)
		}
	}

	match := keyLine.FindStringSubmatch(stderr)
	if match == nil {
		t.Fatalf("no key in stderr %q", stderr)
	}

	got, stderr, err := run(t, chunks, "decode", "--key", match[1])
	if err != nil {
		t.Fatalf("decode error: %v (stderr %q)", err, stderr)
	}

	if got != plaintext {
		t.Errorf("decode = %q, want %q", got, plaintext)
	}
}

func TestPresetDoesNotOverrideExplicitFlags(t *testing.T) {
	chunks, stderr, err := run(t, "explicit length wins", "encode", "--preset", "sha512", "--length", "48")
	if err != nil {
		t.Fatalf("encode error: %v (stderr %q)", err, stderr)
	}

	for _, line := range strings.Fields(chunks) {
		if len(line) != 48 {
			t.Errorf("chunk length %d, want 48", len(line))
		}
	}
}

func TestEnvironmentBinding(t *testing.T) {
	t.Setenv("BANANAPEEL_LENGTH", "40")
	t.Setenv("BANANAPEEL_MIN_DATA", "16")

	chunks, stderr, err := run(t, "configured from the environment", "encode")
	if err != nil {
		t.Fatalf("encode error: %v (stderr %q)", err, stderr)
	}

	for _, line := range strings.Fields(chunks) {
		if len(line) != 40 {
			t.Errorf("chunk length %d, want 40", len(line))
		}
	}
}

func TestEncodeFilesWithSuffix(t *testing.T) {
	dir := t.TempDir()

	var files []string

	for _, name := range []string{"one.txt", "two.txt"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(name), 0o600); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}

		files = append(files, path)
	}

	_, stderr, err := run(t, "", append([]string{"encode", "--quiet", "--suffix", ".hashes"}, files...)...)
	if err != nil {
		t.Fatalf("encode error: %v (stderr %q)", err, stderr)
	}

	for _, file := range files {
		if _, err := os.Stat(file + ".hashes"); err != nil {
			t.Errorf("expected output for %s: %v", file, err)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	tests := map[string][]string{
		"no noise room":    {"encode", "--length", "40", "--min-data", "32"},
		"unknown preset":   {"encode", "--preset", "crc"},
		"decode no key":    {"decode"},
		"key and key file": {"decode", "--key", "a", "--key-file", "b"},
		"two decode files": {"decode", "a", "b"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if _, _, err := run(t, "", args...); err == nil {
				t.Errorf("%v: expected error", args)
			}
		})
	}
}

func TestShowExitsBeforeValidation(t *testing.T) {
	tests := map[string][]string{
		"decode without key": {"decode", "--show"},
		"encode bad options": {"encode", "--show", "--length", "10"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			out, _, err := run(t, "never encoded", args...)
			if !errors.Is(err, cobraext.ErrExitGracefully) {
				t.Fatalf("%v: error = %v, want ErrExitGracefully", args, err)
			}

			if out != "" {
				t.Errorf("%v: command ran after --show: %q", args, out)
			}
		})
	}
}

func TestValidationErrorsAreUsageErrors(t *testing.T) {
	_, _, err := run(t, "", "encode", "--parallel", "0")
	if !errors.Is(err, config.ErrUsage) {
		t.Fatalf("error = %v, want it to wrap ErrUsage", err)
	}

	if !strings.Contains(err.Error(), "--parallel must be 1 or greater") {
		t.Errorf("error = %v, want a translated --parallel message", err)
	}
}

func TestPresetAppliedFromEnvironment(t *testing.T) {
	t.Setenv("BANANAPEEL_PRESET", "sha1")

	chunks, stderr, err := run(t, "preset from the environment", "encode")
	if err != nil {
		t.Fatalf("encode error: %v (stderr %q)", err, stderr)
	}

	for _, line := range strings.Fields(chunks) {
		if len(line) != 40 {
			t.Errorf("chunk length %d, want 40", len(line))
		}
	}
}

func TestPresets(t *testing.T) {
	out, _, err := run(t, "", "presets")
	if err != nil {
		t.Fatalf("presets error: %v", err)
	}

	for _, name := range []string{"md5", "sha1", "sha256 (default)", "sha512"} {
		if !strings.Contains(out, name) {
			t.Errorf("presets output missing %q:\n%s", name, out)
		}
	}
}
