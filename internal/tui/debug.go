package tui

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// debugLogf appends one line to the configured debug log. Best effort; a
// missing or unwritable path silently disables logging.
func (m appModel) debugLogf(format string, args ...any) {
	path := strings.TrimSpace(m.cfg.DebugLog)
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s "+format+"\n", append([]any{time.Now().Format("15:04:05.000")}, args...)...)
}

func (m appModel) debugKeyMsg(key string) {
	top := "none"
	if e, ok := m.modals.Top(); ok {
		top = e.Kind.String()
	}
	m.debugLogf("key=%q modal=%s search=%v cursor=%d params=%q",
		key, top, m.searchFocused, m.cursor, m.params.Encode().Encode())
}
