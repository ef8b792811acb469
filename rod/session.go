package rod

import (
	"github.com/fwojciec/sitelens"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// session is a launched browser together with the launcher process that
// owns it. A session is not safe for concurrent use; Renderer guards it
// with its mutex.
type session struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int
}

// launchSession starts a headless browser with the flags required to run
// inside containers.
func launchSession(bin string) (*session, error) {
	l := launcher.New().
		Headless(true).
		NoSandbox(true).
		Set("disable-dev-shm-usage").
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Leakless(true)
	if bin != "" {
		l = l.Bin(bin)
	}

	u, err := l.Launch()
	if err != nil {
		l.Kill() // The process may have started before URL resolution failed
		return nil, sitelens.WrapError(sitelens.EINTERNAL, err, "launching browser")
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, sitelens.WrapError(sitelens.EINTERNAL, err, "connecting to browser")
	}

	return &session{browser: browser, launcher: l}, nil
}

// close shuts down the browser and kills the launcher. Safe on a nil
// session.
func (s *session) close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.browser != nil {
		err = s.browser.Close()
		s.browser = nil
	}
	if s.launcher != nil {
		s.launcher.Kill()
		s.launcher = nil
	}
	return err
}

func (s *session) pid() int {
	if s == nil || s.launcher == nil {
		return 0
	}
	return s.launcher.PID()
}
