// Package system wraps the terminal and console state the menu changes while
// it runs. Every acquisition returns an object whose Restore is safe to call
// more than once, so callers can defer it on every exit path.
package system

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

func logResult(l logger, err error, okMsg, failMsg string) {
	if l == nil {
		return
	}
	if err != nil {
		l.Errorf("tty", "%s: %v", failMsg, err)
		return
	}
	l.Infof("tty", "%s", okMsg)
}
