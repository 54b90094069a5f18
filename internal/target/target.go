package target

// Target describes the compilation target's addressing parameters.
type Target struct {
	Triple   string // e.g. "x86_64-linux-gnu"
	PtrSize  int    // bytes
	PtrAlign int    // bytes
}

// PtrBits returns the pointer width in bits.
func (t Target) PtrBits() int { return t.PtrSize * 8 }

func X86_64LinuxGNU() Target {
	return Target{
		Triple:   "x86_64-linux-gnu",
		PtrSize:  8,
		PtrAlign: 8,
	}
}

func AArch64LinuxGNU() Target {
	return Target{
		Triple:   "aarch64-linux-gnu",
		PtrSize:  8,
		PtrAlign: 8,
	}
}

// Host returns the default target used when none is configured.
func Host() Target { return X86_64LinuxGNU() }
