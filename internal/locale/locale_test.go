package locale

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{input: "en_US.UTF-8", want: "en-US", ok: true},
		{input: "zh-cn", want: "zh-CN", ok: true},
		{input: "pt_BR@euro", want: "pt-BR", ok: true},
		{input: " fr ", want: "fr", ok: true},
		{input: "C", ok: false},
		{input: "POSIX", ok: false},
		{input: "", ok: false},
		{input: "not a locale!", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Normalize(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("Normalize(%q): got (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDetectNeverReturnsEmpty(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "C")
	if got := Detect(); got == "" {
		t.Fatal("expected a locale")
	}
}

func TestTranslatorSwitchesLanguage(t *testing.T) {
	tr := NewTranslator("en-US")
	if got := tr.T(MsgRecentlyOpened); got != "Recently opened" {
		t.Fatalf("unexpected english %q", got)
	}

	tr.SetLanguage("zh-CN")
	if got := tr.T(MsgRecentlyOpened); got != "最近打开" {
		t.Fatalf("unexpected chinese %q", got)
	}
	if tr.Language() != "zh-CN" {
		t.Fatalf("unexpected language %q", tr.Language())
	}
}

func TestTranslatorFallsBackToEnglish(t *testing.T) {
	tr := NewTranslator("de-DE")
	if got := tr.T(MsgRefresh); got != "Refresh" {
		t.Fatalf("expected english fallback, got %q", got)
	}
	if tr.Language() != "de-DE" {
		t.Fatalf("expected requested code to be remembered, got %q", tr.Language())
	}
}

func TestTranslatorTemplateData(t *testing.T) {
	tr := NewTranslator("en-US")
	if got := tr.T(MsgSaved, map[string]any{"Name": "a.md"}); got != "Saved a.md" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestTranslatorUnknownIDReturnsID(t *testing.T) {
	tr := NewTranslator("en-US")
	if got := tr.T("nope.missing"); got != "nope.missing" {
		t.Fatalf("expected id back, got %q", got)
	}
}

func TestCatalogsCoverSameIDs(t *testing.T) {
	ids := map[string]int{}
	for _, messages := range catalogs {
		for _, m := range messages {
			ids[m.ID]++
		}
	}
	for id, n := range ids {
		if n != len(catalogs) {
			t.Fatalf("message %q present in %d of %d catalogs", id, n, len(catalogs))
		}
	}
}

func TestNextWraps(t *testing.T) {
	if Next("en-US") != "zh-CN" || Next("zh-CN") != "en-US" || Next("fr") != "en-US" {
		t.Fatal("unexpected language cycle")
	}
}
