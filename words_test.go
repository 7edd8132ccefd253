package bbow

import "testing"

func TestIsWord(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"simple word", "banana", true},
		{"mixed case", "Hello", true},
		{"non-ascii letters", "untïl", true},
		{"empty", "", false},
		{"internal apostrophe", "ain't", false},
		{"internal hyphen", "b-banana", false},
		{"internal digit", "x9y", false},
		{"punctuation only", "...", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isWord(tt.in); got != tt.want {
				t.Errorf("isWord(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHasUppercase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"all lowercase", "banana", false},
		{"leading uppercase", "Banana", true},
		{"internal uppercase", "baNana", true},
		{"non-ascii uppercase", "Über", true},
		{"non-ascii lowercase", "über", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasUppercase(tt.in); got != tt.want {
				t.Errorf("hasUppercase(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTrimToWord(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trimming needed", "over", "over"},
		{"trailing period", "over.", "over"},
		{"trailing comma after apostrophe token", "ain't,", "ain't"},
		{"leading and trailing", "--over!?", "over"},
		{"digits at both ends", "7th", "th"},
		{"punctuation only", "...", ""},
		{"empty", "", ""},
		{"internal punctuation survives trimming", "b-banana", "b-banana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trimToWord(tt.in); got != tt.want {
				t.Errorf("trimToWord(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOwnershipDecidedAtFirstInsertion(t *testing.T) {
	// First occurrence is already lowercase: the key borrows from the
	// fragment and stays borrowed when the uppercase form arrives later.
	b := New().ExtendFromText("apple APPLE")
	if len(b.entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(b.entries))
	}
	if b.entries[0].owned {
		t.Errorf("key %q should be borrowed", b.entries[0].word)
	}
	if b.entries[0].count != 2 {
		t.Errorf("count = %d, want 2", b.entries[0].count)
	}

	// First occurrence needed lowercasing: the key is an owned copy.
	b = New().ExtendFromText("APPLE apple")
	if !b.entries[0].owned {
		t.Errorf("key %q should be owned", b.entries[0].word)
	}
}

func TestEntriesStaySorted(t *testing.T) {
	b := New().ExtendFromText("delta bravo echo alpha charlie")
	for i := 1; i < len(b.entries); i++ {
		if b.entries[i-1].word >= b.entries[i].word {
			t.Fatalf("entries out of order at %d: %q >= %q",
				i, b.entries[i-1].word, b.entries[i].word)
		}
	}
}
