package sha256

import "strings"

// The following vectors were taken from:
// https://www.di-mgt.com.au/sha_testvectors.html

var vectors = []struct {
	name  string
	input string
	hash  string
}{
	{
		name:  "empty",
		input: "",
		hash:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	},
	{
		name:  "abc",
		input: "abc",
		hash:  "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	},
	{
		name:  "448 bits",
		input: "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		hash:  "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
	},
	{
		name:  "896 bits",
		input: "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
		hash:  "cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1",
	},
	{
		name:  "million a",
		input: strings.Repeat("a", 1000000),
		hash:  "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0",
	},
}

// availableBackends returns the backends that can run on this machine.
func availableBackends() (out []Backend) {
	for _, b := range Backends() {
		if b.Available() {
			out = append(out, b)
		}
	}
	return out
}
