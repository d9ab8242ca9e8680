package test_helpers

import (
	"fmt"
	"sync"

	. "github.com/onsi/ginkgo/v2"
)

const portRangeStart = 26000

var (
	lastPortUsed int
	portLock     sync.Mutex
)

// NextAvailPort hands out ports that do not collide across parallel ginkgo
// processes.
func NextAvailPort() int {
	portLock.Lock()
	defer portLock.Unlock()

	if lastPortUsed == 0 {
		lastPortUsed = portRangeStart + GinkgoParallelProcess()
	}

	suiteCfg, _ := GinkgoConfiguration()
	lastPortUsed += suiteCfg.ParallelTotal
	return lastPortUsed
}

func LocalURL(port int) string {
	return fmt.Sprintf("http://127.0.0.1:%d", port)
}
