// ABOUTME: Tests for the enum string forms used by logs and the UI
package sampler

import "testing"

func TestEnumStrings(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{Stopped.String(), "stopped"},
		{Playing.String(), "playing"},
		{Paused.String(), "paused"},
		{State(99).String(), "unknown"},
		{LoopOff.String(), "off"},
		{LoopForward.String(), "forward"},
		{LoopPingPong.String(), "pingpong"},
		{LoopMode(99).String(), "unknown"},
		{QualityNone.String(), "none"},
		{QualityLinear.String(), "linear"},
		{QualityCubic.String(), "cubic"},
		{Quality(99).String(), "unknown"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("String() = %q, want %q", c.got, c.want)
		}
	}
}
