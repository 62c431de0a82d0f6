//go:build !mobile

package utils

import "testing"

func TestIsMobileEmulation(t *testing.T) {
	t.Setenv("BIRTHDAY24_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() = true on desktop without emulation")
	}
	t.Setenv("BIRTHDAY24_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() = false with BIRTHDAY24_MOBILE_EMULATE=1")
	}
}
