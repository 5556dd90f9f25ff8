//go:build linux

package threading

import "golang.org/x/sys/unix"

func setAffinity(cpuIndex int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuIndex)
	return unix.SchedSetaffinity(0, &set)
}
