package identifier

import (
	"strings"
	"testing"

	"github.com/pemistahl/lingua-go"
)

func testIdentifier(t *testing.T) *Identifier {
	t.Helper()
	return NewForLanguages(0, lingua.English, lingua.French, lingua.German)
}

func TestIdentifyLine(t *testing.T) {
	id := testIdentifier(t)

	tests := []struct {
		name     string
		line     string
		wantLang string
		wantNil  bool
	}{
		{
			name:     "english sentence",
			line:     "the quick brown fox jumps over the lazy dog near the river bank",
			wantLang: "en",
		},
		{
			name:     "french sentence",
			line:     "le renard brun rapide saute par dessus le chien paresseux dans le jardin",
			wantLang: "fr",
		},
		{
			name:    "too short",
			line:    "hi",
			wantNil: true,
		},
		{
			name:    "whitespace only",
			line:    "    \t   ",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ident := id.IdentifyLine(tt.line)
			if tt.wantNil {
				if ident != nil {
					t.Errorf("IdentifyLine(%q) = %v, want nil", tt.line, ident)
				}
				return
			}
			if ident == nil {
				t.Fatalf("IdentifyLine(%q) = nil, want %s", tt.line, tt.wantLang)
			}
			if got := ident.Label().String(); got != tt.wantLang {
				t.Errorf("IdentifyLine(%q) label = %s, want %s", tt.line, got, tt.wantLang)
			}
			if ident.Prob() <= 0 || ident.Prob() > 1 {
				t.Errorf("confidence %v outside (0, 1]", ident.Prob())
			}
		})
	}
}

func TestIdentifyDocument(t *testing.T) {
	id := testIdentifier(t)

	content := strings.Join([]string{
		"the quick brown fox jumps over the lazy dog near the river bank",
		"hi",
		"this is another plain english sentence about nothing in particular",
	}, "\n")

	doc, sentences := id.Identify(content)
	if doc == nil {
		t.Fatal("document-level identification is nil")
	}
	if got := doc.Label().String(); got != "en" {
		t.Errorf("document label = %s, want en", got)
	}
	if len(sentences) != 3 {
		t.Fatalf("sentence slots = %d, want 3", len(sentences))
	}
	if sentences[0] == nil || sentences[2] == nil {
		t.Error("identifiable lines got nil slots")
	}
	if sentences[1] != nil {
		t.Errorf("short line got an identification: %v", sentences[1])
	}
}

func TestIdentifyNothingIdentifiable(t *testing.T) {
	id := testIdentifier(t)

	doc, sentences := id.Identify("a\nb\nc")
	if doc != nil {
		t.Errorf("document identification = %v, want nil", doc)
	}
	if len(sentences) != 3 {
		t.Errorf("sentence slots = %d, want 3", len(sentences))
	}
	for i, s := range sentences {
		if s != nil {
			t.Errorf("slot %d = %v, want nil", i, s)
		}
	}
}
