package ref

import (
	"testing"

	"github.com/FocuswithJustin/TanachReader/core/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    VerseRange
		wantErr bool
	}{
		{
			name:  "compact code range",
			input: "GEN1:1-2:3",
			want: VerseRange{
				Start: VersePoint{Book: "Genesis", Chapter: 1, Verse: 1},
				End:   VersePoint{Book: "Genesis", Chapter: 2, Verse: 3},
			},
		},
		{
			name:  "dotted range",
			input: "Genesis.1.1-2.3",
			want: VerseRange{
				Start: VersePoint{Book: "Genesis", Chapter: 1, Verse: 1},
				End:   VersePoint{Book: "Genesis", Chapter: 2, Verse: 3},
			},
		},
		{
			name:  "spaced colon range",
			input: "Genesis 1:1-2:3",
			want: VerseRange{
				Start: VersePoint{Book: "Genesis", Chapter: 1, Verse: 1},
				End:   VersePoint{Book: "Genesis", Chapter: 2, Verse: 3},
			},
		},
		{
			name:  "single verse compact",
			input: "HAB3:1",
			want: VerseRange{
				Start: VersePoint{Book: "Habakkuk", Chapter: 3, Verse: 1},
				End:   VersePoint{Book: "Habakkuk", Chapter: 3, Verse: 1},
			},
		},
		{
			name:  "single verse spaced",
			input: "Genesis 1:1",
			want: VerseRange{
				Start: VersePoint{Book: "Genesis", Chapter: 1, Verse: 1},
				End:   VersePoint{Book: "Genesis", Chapter: 1, Verse: 1},
			},
		},
		{
			name:  "same chapter shorthand",
			input: "Genesis 1:1-5",
			want: VerseRange{
				Start: VersePoint{Book: "Genesis", Chapter: 1, Verse: 1},
				End:   VersePoint{Book: "Genesis", Chapter: 1, Verse: 5},
			},
		},
		{
			name:  "numbered book code",
			input: "2KI4:8-4:37",
			want: VerseRange{
				Start: VersePoint{Book: "II Kings", Chapter: 4, Verse: 8},
				End:   VersePoint{Book: "II Kings", Chapter: 4, Verse: 37},
			},
		},
		{
			name:  "multi word book",
			input: "Song of Songs 1:1-1:4",
			want: VerseRange{
				Start: VersePoint{Book: "Song of Songs", Chapter: 1, Verse: 1},
				End:   VersePoint{Book: "Song of Songs", Chapter: 1, Verse: 4},
			},
		},
		{
			name:  "en dash separator",
			input: "Numbers 22:2–22:12",
			want: VerseRange{
				Start: VersePoint{Book: "Numbers", Chapter: 22, Verse: 2},
				End:   VersePoint{Book: "Numbers", Chapter: 22, Verse: 12},
			},
		},
		{
			name:  "case insensitive book",
			input: "habakkuk 1:2",
			want: VerseRange{
				Start: VersePoint{Book: "Habakkuk", Chapter: 1, Verse: 2},
				End:   VersePoint{Book: "Habakkuk", Chapter: 1, Verse: 2},
			},
		},
		{name: "end before start across chapters", input: "Genesis 2:3-1:1", wantErr: true},
		{name: "end before start within chapter", input: "Genesis 1:5-1:1", wantErr: true},
		{name: "zero chapter", input: "Genesis 0:1", wantErr: true},
		{name: "zero verse", input: "Genesis 1:0", wantErr: true},
		{name: "chapter only", input: "Genesis 1", wantErr: true},
		{name: "book only", input: "Genesis", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "::--", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tt.input, got)
				}
				if !errors.Is(err, errors.ErrGrammar) {
					t.Errorf("Parse(%q) error = %v, want ErrGrammar", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseGrammarEquivalence(t *testing.T) {
	// The three notations must produce identical ranges.
	inputs := []string{"GEN1:1-2:3", "Genesis.1.1-2.3", "Genesis 1:1-2:3"}
	want := VerseRange{
		Start: VersePoint{Book: "Genesis", Chapter: 1, Verse: 1},
		End:   VersePoint{Book: "Genesis", Chapter: 2, Verse: 3},
	}
	for _, input := range inputs {
		got, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", input, err)
		}
		if got != want {
			t.Errorf("Parse(%q) = %+v, want %+v", input, got, want)
		}
	}
}

func TestVerseRangeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "single verse", input: "GEN1:1", want: "Genesis 1:1"},
		{name: "same chapter", input: "Genesis 1:1-5", want: "Genesis 1:1-5"},
		{name: "cross chapter", input: "Genesis.1.29-2.3", want: "Genesis 1:29-2:3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got := rng.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewRange(t *testing.T) {
	t.Run("mismatched books", func(t *testing.T) {
		_, err := NewRange(
			VersePoint{Book: "Genesis", Chapter: 1, Verse: 1},
			VersePoint{Book: "Exodus", Chapter: 1, Verse: 1},
		)
		if !errors.Is(err, errors.ErrGrammar) {
			t.Errorf("NewRange error = %v, want ErrGrammar", err)
		}
	})

	t.Run("equal endpoints allowed", func(t *testing.T) {
		p := VersePoint{Book: "Genesis", Chapter: 1, Verse: 1}
		rng, err := NewRange(p, p)
		if err != nil {
			t.Fatalf("NewRange error = %v", err)
		}
		if !rng.IsSingle() {
			t.Errorf("IsSingle() = false, want true")
		}
	})
}

func TestVersePointBefore(t *testing.T) {
	tests := []struct {
		name string
		p, q VersePoint
		want bool
	}{
		{name: "earlier chapter", p: VersePoint{Chapter: 1, Verse: 31}, q: VersePoint{Chapter: 2, Verse: 1}, want: true},
		{name: "same chapter earlier verse", p: VersePoint{Chapter: 1, Verse: 1}, q: VersePoint{Chapter: 1, Verse: 2}, want: true},
		{name: "equal", p: VersePoint{Chapter: 1, Verse: 1}, q: VersePoint{Chapter: 1, Verse: 1}, want: false},
		{name: "later", p: VersePoint{Chapter: 2, Verse: 1}, q: VersePoint{Chapter: 1, Verse: 31}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Before(tt.q); got != tt.want {
				t.Errorf("Before() = %v, want %v", got, tt.want)
			}
		})
	}
}
