package audit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// VerifyResult holds the outcome of a hash chain verification.
type VerifyResult struct {
	Valid     bool   `json:"valid"`
	Lines     int    `json:"lines"`
	Error     string `json:"error,omitempty"`
	ErrorLine int    `json:"error_line,omitempty"`
}

// Verify walks a JSONL audit trail and validates the hash chain: the
// first entry must carry the genesis hash, every later entry the hash
// of the preceding raw line. Reports the first broken link.
func Verify(path string) VerifyResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return VerifyResult{Error: fmt.Sprintf("read: %v", err)}
	}

	lines := splitTrailLines(data)
	want := GenesisHash
	for i, line := range lines {
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			return VerifyResult{
				Error:     fmt.Sprintf("parse error: %v", err),
				ErrorLine: i + 1,
			}
		}
		if entry.PrevHash != want {
			return VerifyResult{
				Error:     fmt.Sprintf("hash mismatch: expected %s, got %s", want, entry.PrevHash),
				ErrorLine: i + 1,
			}
		}
		want = HashLine(line)
	}

	return VerifyResult{Valid: true, Lines: len(lines)}
}

// splitTrailLines splits a trail into its JSON lines, dropping the
// trailing empty slice a final newline leaves behind.
func splitTrailLines(data []byte) [][]byte {
	data = bytes.TrimRight(data, "\n")
	if len(data) == 0 {
		return nil
	}
	return bytes.Split(data, []byte("\n"))
}
