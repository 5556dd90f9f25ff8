//go:build windows

package threading

import "golang.org/x/sys/windows"

var (
	modkernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procGetCurrentThread       = modkernel32.NewProc("GetCurrentThread")
	procSetThreadAffinityMask  = modkernel32.NewProc("SetThreadAffinityMask")
)

func setAffinity(cpuIndex int) error {
	mask := uintptr(1) << uint(cpuIndex)
	handle, _, _ := procGetCurrentThread.Call()
	ret, _, callErr := procSetThreadAffinityMask.Call(handle, mask)
	if ret == 0 {
		return callErr
	}
	return nil
}
