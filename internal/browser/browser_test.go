package browser

import "testing"

func TestOpenRejectsNonHTTP(t *testing.T) {
	for _, bad := range []string{
		"file:///etc/passwd",
		"javascript:alert(1)",
		"ftp://example.com",
		"",
	} {
		if err := Open(bad); err == nil {
			t.Errorf("Open(%q): expected error, got nil", bad)
		}
	}
	// Valid schemes pass validation; the actual launch may still fail on
	// headless machines, which is fine here.
}
