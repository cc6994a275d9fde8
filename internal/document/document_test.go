package document

import "testing"

func TestOpenPublishesPathChange(t *testing.T) {
	s := NewStore()
	var got, prev string
	s.Subscribe(func(cur, old State) {
		got, prev = cur.Path, old.Path
	})

	s.Open("/notes/a.md", "# A")

	if got != "/notes/a.md" || prev != "" {
		t.Fatalf("unexpected change %q -> %q", prev, got)
	}
	if !s.HasDocOpened() {
		t.Fatal("expected document to be open")
	}
	if s.Current().Name() != "a.md" {
		t.Fatalf("unexpected name %q", s.Current().Name())
	}
}

func TestSetContentMarksDirtyOnlyOnChange(t *testing.T) {
	s := NewStore()
	s.Open("/notes/a.md", "same")

	s.SetContent("same")
	if s.Current().Dirty {
		t.Fatal("identical content should not mark dirty")
	}
	s.SetContent("changed")
	if !s.Current().Dirty {
		t.Fatal("expected dirty after edit")
	}
}

func TestMarkSavedAssignsPathToUntitled(t *testing.T) {
	s := NewStore()
	s.New()
	if !s.HasDocOpened() || s.Current().Name() != "Untitled" {
		t.Fatalf("unexpected untitled state %+v", s.Current())
	}
	s.SetContent("draft")

	s.MarkSaved("/notes/draft.md", "draft")

	cur := s.Current()
	if cur.Path != "/notes/draft.md" || cur.Untitled || cur.Dirty {
		t.Fatalf("unexpected state after save %+v", cur)
	}
	if cur.Content != "draft" {
		t.Fatalf("content should survive save, got %q", cur.Content)
	}
}

func TestMarkSavedKeepsDirtyWhenBufferMovedOn(t *testing.T) {
	s := NewStore()
	s.Open("/notes/a.md", "one")
	s.SetContent("two")
	s.SetContent("three")

	s.MarkSaved("/notes/a.md", "two")

	if !s.Current().Dirty {
		t.Fatal("expected dirty: buffer changed after the save was captured")
	}
}

func TestCloseClearsState(t *testing.T) {
	s := NewStore()
	s.Open("/notes/a.md", "x")
	s.Close()
	if s.HasDocOpened() {
		t.Fatal("expected no document after close")
	}
}
