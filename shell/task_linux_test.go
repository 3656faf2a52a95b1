package shell_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joshyorko/scriptboard/hamlet"
	"github.com/joshyorko/scriptboard/shell"
)

func TestDetachedProcessIsReaped(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	pid, err := shell.New(nil, ".", "sh", "-c", "exit 0").Detach()
	must_be.Nil(err)
	must_be.True(pid > 0)

	// an unreaped child stays in /proc as a zombie
	entry := fmt.Sprintf("/proc/%d", pid)
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(entry); os.IsNotExist(err) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("detached process %d was never reaped", pid)
}
