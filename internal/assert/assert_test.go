package assert

import "testing"

func TestReleaseBuildIsSilent(t *testing.T) {
	if Enabled {
		t.Skip("built with tgdebug")
	}
	// Must not panic.
	That(false, "ignored")
	Normalized(4, "ignored")
	NonSingular(0, "ignored")
}

func TestDebugBuildPanics(t *testing.T) {
	if !Enabled {
		t.Skip("built without tgdebug")
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic for singular matrix")
		}
	}()
	NonSingular(0, "test")
}
