package solvent

import "strings"

// Sentinels used by the backend to flatten multi-line chunks into
// single-line wire frames. Neither is a substring of the other, so
// replacement order does not matter on decode; on encode, literal
// backslash-n sequences must be protected before real newlines.
const (
	sentinelNewline = "<<NEWLINE>>"
	sentinelSlashN  = "<<SLASHN>>"
)

// Decode restores a wire-safe chunk payload to its original text:
// <<SLASHN>> becomes the two-character backslash-n sequence and
// <<NEWLINE>> becomes a real newline. Payloads without sentinels are
// returned unchanged, so Decode is idempotent on decoded input.
func Decode(payload string) string {
	payload = strings.ReplaceAll(payload, sentinelSlashN, `\n`)
	return strings.ReplaceAll(payload, sentinelNewline, "\n")
}

// Encode is the exact inverse of Decode. The backend performs this
// transform; the client only needs it for round-trip tests and local
// tooling.
func Encode(text string) string {
	text = strings.ReplaceAll(text, `\n`, sentinelSlashN)
	return strings.ReplaceAll(text, "\n", sentinelNewline)
}

// StripFences removes a leading markdown code fence (with optional
// language tag) and a trailing closing fence from a decoded chunk. The
// generator sometimes wraps output in a fenced block that must not
// appear in the reconstructed source.
func StripFences(text string) string {
	if rest, ok := strings.CutPrefix(text, "```"); ok {
		i := strings.IndexByte(rest, '\n')
		if i < 0 {
			// The chunk is nothing but an opening fence line.
			return ""
		}
		text = rest[i+1:]
	}
	if trimmed := strings.TrimRight(text, " \t\n"); strings.HasSuffix(trimmed, "```") {
		text = strings.TrimSuffix(trimmed, "```")
	}
	return text
}
