package slugify

import (
	"strings"
	"testing"
)

func TestSlugify_Basic(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Hello World":            "hello-world",
		"  Spaces   everywhere ": "spaces-everywhere",
		"Already-slugged":        "already-slugged",
		"MiXeD CaSe 123":         "mixed-case-123",
		"punctuation!?, lots...": "punctuation-lots",
		"Crème brûlée":           "creme-brulee",
		"Заголовок заметки":      "zagolovok-zametki",
		"!!!":                    "",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenerate_NeverEmpty(t *testing.T) {
	t.Parallel()

	slug := Generate("???", nil)
	if slug == "" {
		t.Fatal("expected non-empty slug for unusable title")
	}
}

func TestGenerate_NumericSuffixOnCollision(t *testing.T) {
	t.Parallel()

	existing := map[string]struct{}{
		"title":   {},
		"title-2": {},
	}
	if got := Generate("Title", existing); got != "title-3" {
		t.Fatalf("expected title-3, got %q", got)
	}
}

func TestGenerate_DistinctForIdenticalTitles(t *testing.T) {
	t.Parallel()

	existing := map[string]struct{}{}
	first := Generate("Same Title", existing)
	existing[first] = struct{}{}
	second := Generate("Same Title", existing)

	if first == "" || second == "" {
		t.Fatal("slugs must not be empty")
	}
	if first == second {
		t.Fatalf("expected distinct slugs, both were %q", first)
	}
}

func TestWithRandomSuffix(t *testing.T) {
	t.Parallel()

	out := WithRandomSuffix("base")
	if !strings.HasPrefix(out, "base-") {
		t.Fatalf("expected base- prefix, got %q", out)
	}
	if len(out) != len("base-")+6 {
		t.Fatalf("unexpected suffix length in %q", out)
	}
	for i := len("base-"); i < len(out); i++ {
		if strings.IndexByte(alphabet, out[i]) == -1 {
			t.Fatalf("suffix contains invalid character %q", out[i])
		}
	}
}
