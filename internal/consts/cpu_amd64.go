package consts

import "golang.org/x/sys/cpu"

// HasBMI2 reports whether RORX is available to the assembly rounds.
var HasBMI2 = cpu.X86.HasBMI2
