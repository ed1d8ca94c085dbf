package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"wanderlust/internal/constants"
	"wanderlust/internal/logger"
	"wanderlust/internal/utils"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// Sink receives in-app toast text. The TUI installs its status line here;
// headless commands fall back to stderr.
type Sink func(text string)

// Notifier delivers activity reminders on two channels: an in-app toast and,
// when the tray app is reachable, a system-level notification. Tray
// availability is probed once at construction and not re-probed when absent.
type Notifier struct {
	toast     Sink
	systemOK  bool
	trayError error
}

type webhookPayload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

func New(toast Sink) *Notifier {
	n := &Notifier{toast: toast}
	if _, _, err := trayEndpoint(); err != nil {
		n.trayError = err
		logger.Debug("System notifications unavailable", "error", err)
	} else {
		n.systemOK = true
	}
	return n
}

// SetSink replaces the toast sink, e.g. when the TUI takes over from stderr.
func (n *Notifier) SetSink(toast Sink) {
	n.toast = toast
}

// Notify raises a reminder for one activity of the named trip.
func (n *Notifier) Notify(tripName, activityTitle, timeOfDay string) {
	text := fmt.Sprintf("%s: %s at %s", tripName, activityTitle, utils.FormatTime(timeOfDay))

	if n.toast != nil {
		n.toast(text)
	}

	if !n.systemOK {
		return
	}
	if err := sendSystemNotification(text); err != nil {
		logger.Warn("System notification failed", "error", err)
	}
}

// trayEndpoint locates the tray app's local webhook through its lockfile and
// validates that the recorded process is actually running.
func trayEndpoint() (port string, secret string, err error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	lockfilePath := filepath.Join(configDir, constants.TrayAppDirName, constants.NotifierLockfileName)

	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("wanderlust-tray is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port = parts[0]
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	secret = parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("wanderlust-tray process not running")
	}
	if !strings.HasPrefix(process.Executable(), "wanderlust-tray") {
		return "", "", fmt.Errorf("process with PID %d is not wanderlust-tray (is %s)", pid, process.Executable())
	}

	return port, secret, nil
}

func sendSystemNotification(text string) error {
	port, secret, err := trayEndpoint()
	if err != nil {
		return err
	}

	payload := webhookPayload{
		Text:       text,
		DurationMs: constants.NotificationDurationMs,
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("http://127.0.0.1:%s", port)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Wanderlust-Secret", secret)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
}
