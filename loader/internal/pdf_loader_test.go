package internal

import "testing"

func TestSplitSections(t *testing.T) {
	text := `ELAN manual
Table of contents noise

1. Getting started
ELAN is an annotation tool for audio and video recordings.

1.1 The main window
The main window shows the media players and the timeline viewer.
It can be resized.

2.4 Adding a new tier
To add a tier, go to Tier > Add New Tier.
`

	chunks := SplitSections(text)

	if len(chunks) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(chunks))
	}
	if chunks[0].Title != "1. Getting started" {
		t.Errorf("unexpected first title: %q", chunks[0].Title)
	}
	if chunks[1].Title != "1.1 The main window" {
		t.Errorf("unexpected second title: %q", chunks[1].Title)
	}
	if chunks[2].Title != "2.4 Adding a new tier" {
		t.Errorf("unexpected third title: %q", chunks[2].Title)
	}
	if chunks[2].Content != "To add a tier, go to Tier > Add New Tier." {
		t.Errorf("unexpected content: %q", chunks[2].Content)
	}
}

func TestSplitSections_DropsPreambleAndEmptySections(t *testing.T) {
	text := `Preamble before any heading.

3.1 Empty section

3.2 Real section
Some body text.
`
	chunks := SplitSections(text)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 section, got %d", len(chunks))
	}
	if chunks[0].Title != "3.2 Real section" {
		t.Errorf("unexpected title: %q", chunks[0].Title)
	}
}

func TestSplitSections_NoHeadings(t *testing.T) {
	if chunks := SplitSections("just some loose text\nwith no headings"); len(chunks) != 0 {
		t.Errorf("expected no sections, got %d", len(chunks))
	}
}
