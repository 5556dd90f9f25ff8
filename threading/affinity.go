package threading

// SetAffinity pins the calling OS thread (see Thread.Start, which already
// calls runtime.LockOSThread) to the CPU identified by cpuIndex. Split per
// platform the way the teacher splits its poller backend
// (eventloop/poller_linux.go / poller_darwin.go / poller_windows.go), since
// thread affinity has no portable syscall.
func SetAffinity(cpuIndex int) error {
	return setAffinity(cpuIndex)
}
