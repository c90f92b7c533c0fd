//go:build !amd64
// +build !amd64

package consts

const HasBMI2 = false
