package debug

import "testing"

func TestTogglesDefaultOff(t *testing.T) {
	if Tokens() || Parse() || Encode() {
		t.Error("toggles should be off without environment overrides")
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("UCL_DEBUG_X", "1")
	if !boolEnv("UCL_DEBUG_X") {
		t.Error("expected true for 1")
	}
	t.Setenv("UCL_DEBUG_X", "false")
	if boolEnv("UCL_DEBUG_X") {
		t.Error("expected false for false")
	}
	t.Setenv("UCL_DEBUG_X", "")
	if boolEnv("UCL_DEBUG_X") {
		t.Error("expected false for empty")
	}
}
