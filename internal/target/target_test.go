package target

import "testing"

func TestKnownTargets(t *testing.T) {
	for _, tgt := range []Target{X86_64LinuxGNU(), AArch64LinuxGNU(), Host()} {
		if tgt.Triple == "" {
			t.Error("triple не должен быть пустым")
		}
		if tgt.PtrSize != 8 {
			t.Errorf("%s: PtrSize = %d", tgt.Triple, tgt.PtrSize)
		}
		if tgt.PtrBits() != tgt.PtrSize*8 {
			t.Errorf("%s: PtrBits = %d", tgt.Triple, tgt.PtrBits())
		}
	}
}
