package utils

import (
	"time"

	"github.com/danjacques/gofslock/fslock"

	"github.com/1llum1n4t1s/VStoVSC/internal/base"
)

var LogProcessSafe = base.NewLogCategory("ProcessSafe")

const processSafeRetryPeriod = 100 * time.Millisecond

/***************************************
 * Inter-process exclusive scope
 ***************************************/

// WithProcessSafeLock holds an exclusive lock file while scope runs, so two
// generators racing on the same output directory serialize instead of
// interleaving partial writes. Waits until the current owner releases.
func WithProcessSafeLock(lockFile Filename, scope func() error) (err error) {
	if err = UFS.Mkdir(lockFile.Dirname); err != nil {
		return err
	}

	var handle fslock.Handle
	for {
		handle, err = fslock.Lock(lockFile.String())
		if err != fslock.ErrLockHeld {
			break
		}
		base.LogVerbose(LogProcessSafe, "%q is locked by another process, waiting...", lockFile)
		time.Sleep(processSafeRetryPeriod)
	}
	if err != nil {
		return err
	}

	defer func() {
		if er := handle.Unlock(); er != nil && err == nil {
			err = er
		}
	}()

	return scope()
}
