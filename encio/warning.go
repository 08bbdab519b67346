package encio

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Warnings is where warnings are sent to.
// Decoding continues past some worrying input, such as unknown wire keys in non-strict mode,
// or io.Writers that write short without an error, but it is not done silently.
// Set it to io.Discard to silence warnings.
var Warnings io.Writer = os.Stderr

var warnMutex sync.Mutex

// Warnf writes a single warning line to Warnings.
func Warnf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}

	warnMutex.Lock()
	defer warnMutex.Unlock()
	fmt.Fprint(Warnings, "enginetypes: "+msg)
}
