// Package accel contains the assembly implementation of the SHA-256
// compression rounds. The routine is generated by the avo program in the
// avo directory of this repository and requires BMI2 for RORX.
//
// The calling convention is fixed: a pointer to the 8 working variables,
// updated in place, and a pointer to the 64 word message schedule, which is
// only read. Callers own both buffers for the duration of the call.
package accel
