package textio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEscapes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no escapes", "plain text", "plain text"},
		{"bmp", `\u0416`, "Ж"},
		{"bmp embedded", `x\u03b1y`, "xαy"},
		{"long form", `\U0001F600`, "😀"},
		{"surrogate pair", `\ud83d\ude00`, "😀"},
		{"unpaired high surrogate", `\ud83d!`, "\uFFFD!"},
		{"unpaired low surrogate", `\ude00`, "\uFFFD"},
		{"short hex left verbatim", `\u04`, `\u04`},
		{"bad hex left verbatim", `\uZZZZ`, `\uZZZZ`},
		{"long form out of range", `\U00110000`, `\U00110000`},
		{"lone backslash", `a\`, `a\`},
		{"adjacent escapes", `\u0061\u0062`, "ab"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DecodeEscapes(c.in))
		})
	}
}
