package main

import "testing"

func TestGuessEntry(t *testing.T) {
	cases := map[string]string{
		"foo.asm":      "asm",
		"FOO.ASM":      "asm",
		"foo.pil":      "pil",
		"foo.txt":      "pil",
		"no_extension": "pil",
		"dir/bar.asm":  "asm",
	}
	for target, want := range cases {
		if got := guessEntry(target); got != want {
			t.Errorf("guessEntry(%q) = %q, want %q", target, got, want)
		}
	}
}
