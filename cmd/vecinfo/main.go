// Command vecinfo inspects and exercises the vector library.
//
// Usage:
//
//	vecinfo kernels [--generic]
//	vecinfo eval [--type T] <vector> <op> <vector>
//	vecinfo eval [--type T] <op> <vector>
//	vecinfo check [--type T] [--size N] [--trials K] [--seed S]
//
// Examples:
//
//	vecinfo kernels
//	vecinfo eval '[1, 2, 3]' + '[4, 5, 6]'
//	vecinfo eval --type complex128 neg '[(1+2i), (0-1i)]'
//	vecinfo check --type decimal --trials 500 --size 32
package main

import "github.com/sirupsen/logrus"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatal(err)
	}
}
