package station

import (
	"context"
	"strings"
	"testing"
)

func TestLockdownWrongPasswordLeavesStateUnchanged(t *testing.T) {
	metrics := newStubMetrics()
	s, buf := newTestStation(t, 80, WithMetricsRecorder(metrics))
	cc := s.ControlCenter()

	passwords := []string{
		"IncorrectPassword",
		"",
		"orbitronsecure",
		"OrbitronSecure ",
		strings.Repeat("x", 100),
		// Same bcrypt key stream as the code: code+NUL cycled to 72 bytes.
		strings.Repeat(testSecurityCode+"\x00", 5)[:72],
	}
	for _, pw := range passwords {
		if cc.Lockdown(context.Background(), pw) {
			t.Fatalf("Lockdown(%q) succeeded", pw)
		}
		if cc.IsLockedDown() {
			t.Fatalf("lockdown flag set by wrong password %q", pw)
		}
		assertLines(t, buf, "Incorrect password. Lockdown failed.")
	}
	if got := metrics.lockdownAttempts[false]; got != len(passwords) {
		t.Fatalf("failed attempts = %d, want %d", got, len(passwords))
	}
	if metrics.lockdownActive {
		t.Fatalf("lockdown gauge set after failures")
	}
}

func TestLockdownCorrectPasswordIsOneWay(t *testing.T) {
	metrics := newStubMetrics()
	s, buf := newTestStation(t, 80, WithMetricsRecorder(metrics))
	cc := s.ControlCenter()

	if !cc.Lockdown(context.Background(), testSecurityCode) {
		t.Fatalf("Lockdown with security code failed")
	}
	if !cc.IsLockedDown() {
		t.Fatalf("expected lockdown flag set")
	}
	assertLines(t, buf,
		"Control Center is now locked down.",
		"This is sensitive information accessible only under lockdown.",
	)

	// A later wrong password does not lift the lockdown.
	cc.Lockdown(context.Background(), "IncorrectPassword")
	if !cc.IsLockedDown() {
		t.Fatalf("lockdown flag cleared by wrong password")
	}
	assertLines(t, buf, "Incorrect password. Lockdown failed.")

	// Re-locking repeats the confirmation.
	if !cc.Lockdown(context.Background(), testSecurityCode) {
		t.Fatalf("second Lockdown failed")
	}
	assertLines(t, buf,
		"Control Center is now locked down.",
		"This is sensitive information accessible only under lockdown.",
	)

	if metrics.lockdownAttempts[true] != 2 || metrics.lockdownAttempts[false] != 1 {
		t.Fatalf("lockdown attempts = %v, want 2 success / 1 failure", metrics.lockdownAttempts)
	}
	if !metrics.lockdownActive {
		t.Fatalf("lockdown gauge not set")
	}
}

func TestSensitiveInformationRequiresLockdown(t *testing.T) {
	s, buf := newTestStation(t, 80)
	s.ControlCenter().printSensitiveInformation()
	if out := buf.String(); out != "" {
		t.Fatalf("sensitive information printed before lockdown: %q", out)
	}
}

func TestControlCenterDoesNotStoreCodeInPlaintext(t *testing.T) {
	s, _ := newTestStation(t, 80)
	if strings.Contains(string(s.ControlCenter().securityHash), testSecurityCode) {
		t.Fatalf("security hash contains the plaintext code")
	}
}
