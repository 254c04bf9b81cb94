package classify

import (
	"strings"
	"testing"

	"github.com/randalmurphal/repotidy/git"
)

func TestFromDiff_NoEvidence(t *testing.T) {
	tests := []struct {
		name string
		diff string
	}{
		{"empty", ""},
		{"context only", " unchanged line\n another one\n"},
		{"headers without markers", "diff --git a/x b/x\nindex 123..456\n@@ -1,2 +1,2 @@"},
		{"markers without keywords", "+x := 1\n-y := 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromDiff(tt.diff); got != git.CommitTypeChore {
				t.Errorf("FromDiff() = %q, want chore", got)
			}
		})
	}
}

func TestScoreSignals_SingleLines(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Score
	}{
		{
			name: "def is feature only",
			line: "+def my_function():",
			want: Score{git.CommitTypeFeat: 2},
		},
		{
			name: "comment with fix keyword gets half weight",
			line: "-# fix typo",
			want: Score{git.CommitTypeFix: 0.5},
		},
		{
			name: "comment with refactor keyword",
			line: "+  // refactor later",
			want: Score{git.CommitTypeRefactor: 0.5},
		},
		{
			name: "comment ignores other categories",
			line: "+/* see documentation in readme.md and style.css */",
			want: Score{},
		},
		{
			name: "star comment with bug and refactor",
			line: "+ * bug: refactor this",
			want: Score{git.CommitTypeFix: 0.5, git.CommitTypeRefactor: 0.5},
		},
		{
			name: "long remove line is refactor",
			line: "-remove the legacy handler code here",
			want: Score{git.CommitTypeRefactor: 1},
		},
		{
			name: "short remove line is nothing",
			line: "-remove it",
			want: Score{},
		},
		{
			name: "remove length counts characters not bytes",
			line: "-remove éééééééééééééééé", // 24 characters, 40 bytes
			want: Score{},
		},
		{
			name: "long non-ascii remove line is refactor",
			line: "-remove ééééééééééééééééééééééé", // 31 characters
			want: Score{git.CommitTypeRefactor: 1},
		},
		{
			name: "one line feeds several types",
			line: "+function loadConfig() { return fixError('app.json') }",
			want: Score{
				git.CommitTypeFix:   1,
				git.CommitTypeFeat:  2,
				git.CommitTypeChore: 1,
			},
		},
		{
			name: "docs",
			line: "+see documentation",
			want: Score{git.CommitTypeDocs: 1},
		},
		{
			name: "ui",
			line: "+<link href=\"main.scss\">",
			want: Score{git.CommitTypeUI: 1},
		},
		{
			name: "diff header carries file evidence",
			line: "+++ b/readme.md",
			want: Score{git.CommitTypeDocs: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Explain(tt.line)
			if len(got) != len(tt.want) {
				t.Fatalf("Explain(%q) = %v, want %v", tt.line, got, tt.want)
			}
			for typ, w := range tt.want {
				if got[typ] != w {
					t.Errorf("Explain(%q)[%s] = %v, want %v", tt.line, typ, got[typ], w)
				}
			}
		})
	}
}

func TestParseDiff(t *testing.T) {
	diff := strings.Join([]string{
		"diff --git a/app.py b/app.py",
		"@@ -1,3 +1,3 @@",
		" context",
		"-    # Old Comment",
		"+    return Value",
		"",
	}, "\n")

	signals := ParseDiff(diff)
	if len(signals) != 2 {
		t.Fatalf("len(signals) = %d, want 2", len(signals))
	}
	if signals[0].Polarity != Removed || !signals[0].Comment {
		t.Errorf("signals[0] = %+v, want removed comment", signals[0])
	}
	if signals[0].Text != "-    # old comment" {
		t.Errorf("signals[0].Text = %q, want lower-cased line", signals[0].Text)
	}
	if signals[1].Polarity != Added || signals[1].Comment {
		t.Errorf("signals[1] = %+v, want added code", signals[1])
	}
}

func TestFromDiff_Winner(t *testing.T) {
	tests := []struct {
		name string
		diff string
		want git.CommitType
	}{
		{
			name: "feature beats fix",
			diff: "+def handler():\n+    raise Error('x')",
			want: git.CommitTypeFeat,
		},
		{
			name: "styles",
			diff: "+++ b/site/main.css\n+.button { color: red }\n+@import 'theme.css';",
			want: git.CommitTypeUI,
		},
		{
			name: "only comments",
			diff: "+# typo\n+# bug",
			want: git.CommitTypeFix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromDiff(tt.diff); got != tt.want {
				t.Errorf("FromDiff() = %q, want %q (scores %v)", got, tt.want, Explain(tt.diff))
			}
		})
	}
}

func TestScore_WinnerTieBreak(t *testing.T) {
	tests := []struct {
		name  string
		score Score
		want  git.CommitType
	}{
		{"empty", Score{}, git.CommitTypeChore},
		{"fix over feat", Score{git.CommitTypeFeat: 2, git.CommitTypeFix: 2}, git.CommitTypeFix},
		{"feat over refactor", Score{git.CommitTypeRefactor: 1, git.CommitTypeFeat: 1}, git.CommitTypeFeat},
		{"docs over ui and chore", Score{git.CommitTypeChore: 1, git.CommitTypeUI: 1, git.CommitTypeDocs: 1}, git.CommitTypeDocs},
		{"ui over chore", Score{git.CommitTypeChore: 3, git.CommitTypeUI: 3}, git.CommitTypeUI},
		{"strict maximum wins", Score{git.CommitTypeChore: 3, git.CommitTypeFix: 2.5}, git.CommitTypeChore},
		{"unlisted types follow enumeration", Score{git.CommitTypePerf: 1, git.CommitTypeStyle: 1}, git.CommitTypeStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.score.Winner(); got != tt.want {
				t.Errorf("Winner() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromDiff_TieIndependentOfLineOrder(t *testing.T) {
	a := "+config value\n+bugfix"
	b := "+bugfix\n+config value"
	if FromDiff(a) != FromDiff(b) {
		t.Errorf("FromDiff depends on line order: %q vs %q", FromDiff(a), FromDiff(b))
	}
	if got := FromDiff(a); got != git.CommitTypeFix {
		t.Errorf("FromDiff() = %q, want fix", got)
	}
}
