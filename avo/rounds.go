package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
	. "github.com/mmcloughlin/avo/reg"
)

// Rounds emits the 64 compression rounds. The working variables live in
// R8..R15 for the whole function, so instead of shuffling values between
// rounds the register names are rotated, the same way the portable code
// rotates its variable names.
func Rounds(k Mem) {
	TEXT("rounds", NOSPLIT, `func(state *[8]uint32, w *[64]uint32)`)
	Doc("rounds runs the 64 SHA-256 rounds over the working variables in state using the message schedule w.")
	Pragma("noescape")

	var (
		state = Mem{Base: Load(Param("state"), RSI)}
		w     = Mem{Base: Load(Param("w"), RDI)}
	)

	vs := []Register{R8L, R9L, R10L, R11L, R12L, R13L, R14L, R15L}
	for i, v := range vs {
		MOVL(state.Offset(4*i), v)
	}

	for i := 0; i < 64; i++ {
		Commentf("round %d", i)
		round(vs, k.Offset(4*i), w.Offset(4*i))

		// h now holds the new a and d the new e
		vs = append(vs[7:], vs[:7]...)
	}

	Comment("store working variables")
	for i, v := range vs {
		MOVL(v, state.Offset(4*i))
	}

	RET()
}

func round(vs []Register, k, w Mem) {
	a, b, c, d := vs[0], vs[1], vs[2], vs[3]
	e, f, g, h := vs[4], vs[5], vs[6], vs[7]

	// t1 = h + Σ1(e) + Ch(e, f, g) + k + w
	RORXL(U8(6), e, EAX)
	RORXL(U8(11), e, EBX)
	XORL(EBX, EAX)
	RORXL(U8(25), e, EBX)
	XORL(EBX, EAX)

	MOVL(f, ECX)
	XORL(g, ECX)
	ANDL(e, ECX)
	XORL(g, ECX)

	ADDL(EAX, h)
	ADDL(ECX, h)
	ADDL(k, h)
	ADDL(w, h)
	ADDL(h, d)

	// t2 = Σ0(a) + Maj(a, b, c)
	RORXL(U8(2), a, EAX)
	RORXL(U8(13), a, EBX)
	XORL(EBX, EAX)
	RORXL(U8(22), a, EBX)
	XORL(EBX, EAX)

	MOVL(a, ECX)
	ORL(c, ECX)
	ANDL(b, ECX)
	MOVL(a, EDX)
	ANDL(c, EDX)
	ORL(EDX, ECX)

	ADDL(EAX, h)
	ADDL(ECX, h)
}
