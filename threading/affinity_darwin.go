//go:build darwin

package threading

import "github.com/Ed94/zpl-sub000/internal/xerrors"

// Darwin exposes no per-thread CPU affinity syscall (thread_policy_set's
// affinity tag is only a scheduling hint, not a binding guarantee), so this
// binds nothing and returns *xerrors.ErrUnsupported.
func setAffinity(cpuIndex int) error {
	return &xerrors.ErrUnsupported{Op: "SetAffinity", Reason: "darwin exposes no hard thread-affinity syscall"}
}
