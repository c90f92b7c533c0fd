package sha256_test

import (
	"fmt"
	"strings"

	"github.com/kmolski/sha256"
)

func ExampleNew() {
	h := sha256.New()

	h.Write([]byte("some data"))

	fmt.Printf("%x\n", h.Sum(nil))
	//output:
	// 1307990e6ba5ca145eb35e99182a9bec46531bc54ddf656a602c780fa0240dee
}

func ExampleSum256() {
	fmt.Printf("%x\n", sha256.Sum256([]byte("abc")))
	//output:
	// ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}

func ExampleHasher_ReadFrom() {
	h := sha256.New()

	if _, err := h.ReadFrom(strings.NewReader("abc")); err != nil {
		panic(err)
	}

	fmt.Printf("%x\n", h.Finalize())
	//output:
	// ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}

func ExampleParseBackend() {
	b, err := sha256.ParseBackend("portable")
	if err != nil {
		panic(err)
	}
	fmt.Println(b)

	_, err = sha256.ParseBackend("rust")
	fmt.Println(err)
	//output:
	// portable
	// unknown backend: "rust"
}
