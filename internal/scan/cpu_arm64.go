//go:build arm64

package scan

import "golang.org/x/sys/cpu"

func hasNEON() bool {
	return cpu.ARM64.HasASIMD
}
