package minigrep

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

const poem = `I'm nobody! Who are you?
Are you nobody, too?
Then there's a pair of us - don't tell!
They'd banish us, you know.`

const contents = `Rust:
safe, fast, productive.
Pick three.
Duct tape.
Trust me.`

func noEnv(string) (string, bool) { return "", false }

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig([]string{"needle", "haystack.txt"}, noEnv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Query != "needle" || config.FilePath != "haystack.txt" {
		t.Errorf("unexpected config %+v", config)
	}
	if config.IgnoreCase {
		t.Error("expected case-sensitive by default")
	}
}

func TestParseConfigNotEnoughArguments(t *testing.T) {
	if _, err := ParseConfig([]string{"only-query"}, noEnv); err == nil {
		t.Error("expected an error with a single argument")
	}
	if _, err := ParseConfig(nil, noEnv); err == nil {
		t.Error("expected an error with no arguments")
	}
}

func TestParseConfigIgnoreCaseEnv(t *testing.T) {
	env := func(key string) (string, bool) {
		if key == "IGNORE_CASE" {
			return "1", true
		}
		return "", false
	}

	config, err := ParseConfig([]string{"q", "f"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !config.IgnoreCase {
		t.Error("expected IGNORE_CASE to flip the switch")
	}

	// Presence matters, not the value.
	empty := func(key string) (string, bool) { return "", key == "IGNORE_CASE" }
	config, _ = ParseConfig([]string{"q", "f"}, empty)
	if !config.IgnoreCase {
		t.Error("expected an empty IGNORE_CASE to still count as set")
	}
}

func TestSearchOneResult(t *testing.T) {
	got := Search("duct", contents)
	if !reflect.DeepEqual(got, []string{"safe, fast, productive."}) {
		t.Errorf("unexpected results %v", got)
	}
}

func TestSearchCaseSensitive(t *testing.T) {
	// "Duct tape." must not match a lowercase query.
	got := Search("duct", contents)
	for _, line := range got {
		if strings.Contains(line, "Duct") {
			t.Errorf("case-sensitive search matched %q", line)
		}
	}
}

func TestSearchInsensitive(t *testing.T) {
	got := SearchInsensitive("rUsT", contents)
	want := []string{"Rust:", "Trust me."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poem.txt")
	if err := os.WriteFile(path, []byte(poem), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	var out strings.Builder
	err := Run(Config{Query: "body", FilePath: path}, &out)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := "I'm nobody! Who are you?\nAre you nobody, too?\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestRunIgnoreCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poem.txt")
	if err := os.WriteFile(path, []byte(poem), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	var out strings.Builder
	err := Run(Config{Query: "WHO", FilePath: path, IgnoreCase: true}, &out)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out.String() != "I'm nobody! Who are you?\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	err := Run(Config{Query: "q", FilePath: filepath.Join(t.TempDir(), "nope.txt")}, &strings.Builder{})
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestReadSourceGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poem.txt.gz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(poem)); err != nil {
		t.Fatalf("failed to compress fixture: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("failed to finish gzip stream: %v", err)
	}
	f.Close()

	got, err := ReadSource(path)
	if err != nil {
		t.Fatalf("failed to read gzip source: %v", err)
	}
	if got != poem {
		t.Errorf("round trip mismatch:\n%s", got)
	}

	// And the whole pipeline over the compressed file.
	var out strings.Builder
	if err := Run(Config{Query: "banish", FilePath: path}, &out); err != nil {
		t.Fatalf("run over gzip failed: %v", err)
	}
	if out.String() != "They'd banish us, you know.\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}
