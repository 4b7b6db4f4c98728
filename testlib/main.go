//go:build cgo

// testlib is a C-ABI fixture library for exercising foreign function
// interface bindings. For each primitive numeric type it exports a struct
// swap and a subtraction over the C types declared in include/testlib.h,
// so a foreign caller can probe calling conventions, struct layout and
// in-place pointer mutation:
//
//	go build -buildmode=c-shared -o libtestlib.so ./testlib
//
// The exported surface is generated from types.yaml; see cmd/fixturegen.
package main

//go:generate go run github.com/runfalk/typed-ctypes/cmd/fixturegen generate --manifest types.yaml --out .

// main is never called; c-shared libraries only run package initialization.
func main() {}
