package resumark

import (
	"os"
	"strconv"
	"strings"
)

const (
	osc8Start = "\x1b]8;;"
	osc8Sep   = "\x1b\\"
	osc8End   = "\x1b]8;;\x1b\\"
)

// DetectOSC8Support returns true if the current environment likely supports OSC 8 hyperlinks.
func DetectOSC8Support() bool {
	if os.Getenv("OSC8") == "0" {
		return false
	}
	if os.Getenv("DOMTERM") != "" {
		return true
	}
	if os.Getenv("WT_SESSION") != "" {
		return true
	}
	termProgram := os.Getenv("TERM_PROGRAM")
	if termProgram == "iTerm.app" || termProgram == "WezTerm" || termProgram == "vscode" {
		return true
	}
	if strings.Contains(strings.ToLower(os.Getenv("TERM")), "kitty") {
		return true
	}
	if vte := os.Getenv("VTE_VERSION"); vte != "" {
		if n, err := strconv.Atoi(vte); err == nil && n >= 5000 {
			return true
		}
	}
	return false
}

// linkTarget returns the hyperlink target for a word that looks like a URL
// or an e-mail address.
func linkTarget(word string) (string, bool) {
	word = strings.TrimRight(word, ".,;)")
	lower := strings.ToLower(word)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return word, true
	case strings.HasPrefix(lower, "www."):
		return "https://" + word, true
	case strings.HasPrefix(lower, "mailto:"):
		return word, true
	}
	at := strings.IndexByte(word, '@')
	if at > 0 && strings.Contains(word[at+1:], ".") && !strings.ContainsAny(word, "/:") {
		return "mailto:" + word, true
	}
	return "", false
}

// linkify wraps URL and e-mail words in line with OSC 8 sequences. textStyle
// is re-applied after each link.
func linkify(line string, linkStyle, textStyle TermStyle) string {
	words := strings.Split(line, " ")
	changed := false
	for i, word := range words {
		target, ok := linkTarget(word)
		if !ok {
			continue
		}
		words[i] = osc8Start + target + osc8Sep + linkStyle.Prefix + word + resetSeqIf(linkStyle) + textStyle.Prefix + osc8End
		changed = true
	}
	if !changed {
		return line
	}
	return strings.Join(words, " ")
}
