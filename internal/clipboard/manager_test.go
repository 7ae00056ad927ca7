// internal/clipboard/manager_test.go
package clipboard

import "testing"

func TestInternalRegisterRoundTrip(t *testing.T) {
	m := NewManager(false)
	if got := m.Read(); got != "" {
		t.Fatalf("fresh register = %q, want empty", got)
	}
	m.Write("copied text")
	if got := m.Read(); got != "copied text" {
		t.Fatalf("Read = %q", got)
	}
	m.Write("replaced")
	if got := m.Read(); got != "replaced" {
		t.Fatalf("Read = %q", got)
	}
}
