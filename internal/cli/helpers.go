package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prioria/prioria/internal/config"
	"github.com/prioria/prioria/internal/i18n"
	"github.com/prioria/prioria/internal/store"
)

const prioriaDirName = ".prioria"

// prioriaPath returns the path to a file inside .prioria/.
func prioriaPath(parts ...string) string {
	elems := append([]string{prioriaDirName}, parts...)
	return filepath.Join(elems...)
}

// loadConfig reads .prioria/config.yaml, falling back to defaults when the
// file is missing or broken.
func loadConfig() *config.Config {
	cfg, err := config.Load(prioriaPath("config.yaml"))
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// currentLocale resolves the configured display language.
func currentLocale() i18n.Locale {
	loc, err := i18n.Parse(loadConfig().Language)
	if err != nil {
		return i18n.EN
	}
	return loc
}

// dbPath resolves the database location, honoring a config override.
func dbPath() string {
	if p := loadConfig().Database; p != "" {
		return p
	}
	return prioriaPath("prioria.db")
}

// mustStore opens the store, returning an error if prioria is not initialized.
func mustStore() (*store.Store, error) {
	path := dbPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("prioria not initialized. Run: prioria init")
	}
	return openStore(path)
}

// openStore opens or creates the SQLite store at the given path.
func openStore(path string) (*store.Store, error) {
	return store.New(path)
}

// shortID shows the first 8 characters of an opaque ID.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// parseDue accepts "2026-03-15", "2026-03-15 18:00", or "today"/"tomorrow"
// (end of day).
func parseDue(s string, now time.Time) (time.Time, error) {
	switch strings.ToLower(s) {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location()), nil
	case "tomorrow":
		d := now.AddDate(0, 0, 1)
		return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 0, 0, now.Location()), nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, now.Location()); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, now.Location()); err == nil {
		// Bare dates mean end of that day.
		return t.Add(23*time.Hour + 59*time.Minute), nil
	}
	return time.Time{}, fmt.Errorf("invalid due date %q (use YYYY-MM-DD, 'YYYY-MM-DD HH:MM', today, tomorrow)", s)
}

// fmtDue renders a deadline relative to now.
func fmtDue(deadline *time.Time, now time.Time) string {
	if deadline == nil {
		return "-"
	}
	left := deadline.Sub(now)
	switch {
	case left < 0:
		return colorRed + "overdue" + colorReset
	case left < 24*time.Hour:
		return colorYellow + fmt.Sprintf("%dh left", int(left.Hours())) + colorReset
	case left < 7*24*time.Hour:
		return fmt.Sprintf("%dd left", int(left.Hours()/24))
	default:
		return deadline.Format("2006-01-02")
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
