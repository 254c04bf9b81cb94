package changelog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/randalmurphal/repotidy/git"
)

func TestFilter(t *testing.T) {
	in := []string{
		"feat: add login",
		"Merge pull request #1 from me/staging",
		"",
		"docs: update README",
		"chore: bump deps",
		"fix: Version parsing",
		"chore: auto commit based on diff analysis (2026-01-01 10:00)",
		"Initial commit",
		"updated stuff",
	}
	got := Filter(in)
	want := []string{"feat: add login", "updated stuff"}

	if len(got) != len(want) {
		t.Fatalf("Filter() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Filter()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBucket(t *testing.T) {
	entry := Bucket([]string{
		"feat: add login",
		"FIX: crash on start",
		"updated stuff",
		"feat(ui): scoped prefix is not matched",
		"feat: add logout",
		"ci: cache modules",
	})

	if got := entry.Buckets[git.CommitTypeFeat]; len(got) != 2 || got[0] != "feat: add login" || got[1] != "feat: add logout" {
		t.Errorf("feat bucket = %v", got)
	}
	if got := entry.Buckets[git.CommitTypeFix]; len(got) != 1 {
		t.Errorf("fix bucket = %v, want case-insensitive match", got)
	}
	if got := entry.Buckets[git.CommitTypeCI]; len(got) != 1 {
		t.Errorf("ci bucket = %v", got)
	}
	if len(entry.Others) != 2 || entry.Others[0] != "updated stuff" {
		t.Errorf("Others = %v", entry.Others)
	}
	if entry.Len() != 6 {
		t.Errorf("Len() = %d, want 6", entry.Len())
	}
}

func TestMatch_UIIsNotAChangelogSection(t *testing.T) {
	if _, ok := Match("ui: new button"); ok {
		t.Error("ui has no changelog section and should land in Others")
	}
}

func TestRender(t *testing.T) {
	entry := Bucket([]string{"fix: crash", "feat: add login", "updated stuff"})
	date := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	got := Render(entry, "v1.2.0", date)
	want := "## [v1.2.0] - 2026-10-18\n" +
		"\n" +
		"### ✨ Feat\n" +
		"- add login\n" +
		"\n" +
		"### 🐛 Fix\n" +
		"- crash\n" +
		"\n" +
		"### 🔖 Others\n" +
		"- updated stuff\n"

	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_NoOthers(t *testing.T) {
	got := Render(Bucket([]string{"ci: lint"}), UnreleasedLabel, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	want := "## [Unreleased] - 2026-01-02\n\n### 🔁 Ci\n- lint\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestVersionLabel(t *testing.T) {
	if got := VersionLabel(""); got != "Unreleased" {
		t.Errorf("VersionLabel(\"\") = %q", got)
	}
	if got := VersionLabel("v2.0.0"); got != "v2.0.0" {
		t.Errorf("VersionLabel(v2.0.0) = %q", got)
	}
}

func TestFile_PrependCreatesWithHeader(t *testing.T) {
	dir := t.TempDir()
	f := NewFile(dir, "")
	block := Render(Bucket([]string{"feat: add login"}), UnreleasedLabel, time.Now())

	created, err := f.Prepend(block)
	if err != nil {
		t.Fatalf("Prepend: %v", err)
	}
	if !created {
		t.Error("created = false, want true for a new file")
	}

	got, err := f.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != Header+block {
		t.Errorf("content = %q, want header + block", got)
	}
	if filepath.Base(f.Path) != "CHANGELOG.md" {
		t.Errorf("Path = %q", f.Path)
	}
}

func TestFile_PrependExisting(t *testing.T) {
	dir := t.TempDir()
	f := NewFile(dir, "CHANGELOG.md")
	existing := "# Changelog\n\n## [v1.0.0] - 2025-01-01\n"
	if err := os.WriteFile(f.Path, []byte(existing), 0o644); err != nil {
		t.Fatal(err)
	}

	created, err := f.Prepend("## [v1.1.0] - 2026-01-01\n")
	if err != nil {
		t.Fatalf("Prepend: %v", err)
	}
	if created {
		t.Error("created = true for an existing file")
	}

	got, _ := f.Read()
	want := "## [v1.1.0] - 2026-01-01\n\n" + existing
	if got != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestFile_ReadMissing(t *testing.T) {
	got, err := NewFile(t.TempDir(), "").Read()
	if err != nil || got != "" {
		t.Errorf("Read() = %q, %v; want empty, nil", got, err)
	}
}
