package station

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/signalsfoundry/orbitron-station/model"
	"golang.org/x/crypto/bcrypt"
)

const testSecurityCode = "OrbitronSecure"

type stubMetricsRecorder struct {
	lockdownAttempts map[bool]int
	lockdownActive   bool
	samples          int
	oxygenLevel      int
	oxygenChecks     map[model.OxygenStatus]int
	taskAssignments  map[model.ModuleKind]int
	queries          map[string]int
}

func newStubMetrics() *stubMetricsRecorder {
	return &stubMetricsRecorder{
		lockdownAttempts: map[bool]int{},
		oxygenChecks:     map[model.OxygenStatus]int{},
		taskAssignments:  map[model.ModuleKind]int{},
		queries:          map[string]int{},
	}
}

func (r *stubMetricsRecorder) RecordLockdownAttempt(success bool) {
	r.lockdownAttempts[success]++
}

func (r *stubMetricsRecorder) SetLockdownActive(active bool) {
	r.lockdownActive = active
}

func (r *stubMetricsRecorder) SetResearchSamples(n int) {
	r.samples = n
}

func (r *stubMetricsRecorder) SetOxygenLevel(level int) {
	r.oxygenLevel = level
}

func (r *stubMetricsRecorder) RecordOxygenCheck(s model.OxygenStatus) {
	r.oxygenChecks[s]++
}

func (r *stubMetricsRecorder) RecordTaskAssignment(k model.ModuleKind) {
	r.taskAssignments[k]++
}

func (r *stubMetricsRecorder) RecordMissionQuery(query, outcome string) {
	r.queries[query+"/"+outcome]++
}

func newTestStation(t *testing.T, oxygen int, opts ...Option) (*OrbitronSpaceStation, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	opts = append([]Option{WithOutput(&buf)}, opts...)
	s, err := New(context.Background(), Config{
		SecurityCode: testSecurityCode,
		OxygenLevel:  oxygen,
		BcryptCost:   bcrypt.MinCost,
	}, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, &buf
}

// lines drains buf and returns its non-empty lines.
func lines(buf *bytes.Buffer) []string {
	out := strings.Split(strings.TrimSpace(buf.String()), "\n")
	buf.Reset()
	if len(out) == 1 && out[0] == "" {
		return nil
	}
	return out
}

func assertLines(t *testing.T, buf *bytes.Buffer, want ...string) {
	t.Helper()
	got := lines(buf)
	if len(got) != len(want) {
		t.Fatalf("output lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
