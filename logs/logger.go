package logs

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/reusee/chiron/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

func init() {
	for _, l := range []slog.Level{
		slog.LevelDebug,
		slog.LevelInfo,
		slog.LevelWarn,
		slog.LevelError,
	} {
		word := strings.ToLower(l.String())
		cmds.Define("-log-"+word, cmds.Func(func() {
			level.Set(l)
		}).Desc("set log level to "+word))
	}
	cmds.Define("-log-level", cmds.Func(func(l slog.Level) {
		level.Set(l)
	}).Desc("set log level by name or offset, like warn or debug-2").Args("<level>"))
}

type Logger = *slog.Logger

// Logger writes text records to Writer, or to the systemd journal only when running as a service unit.
func (Module) Logger(
	writer Writer,
) Logger {
	var handlers []slog.Handler

	var textHandler slog.Handler
	if !underSystemdService() {
		textHandler = slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level: level,
		})
		handlers = append(handlers, textHandler)
	}

	if journalHandler, err := newJournalHandler(); err == nil {
		handlers = append(handlers, journalHandler)
	} else if textHandler != nil {
		record := slog.NewRecord(time.Now(), slog.LevelWarn, "journal unavailable", 0)
		record.Add("error", err)
		_ = textHandler.Handle(context.Background(), record)
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	}).With("app", "chiron")
}

func newJournalHandler() (slog.Handler, error) {
	return slogjournal.NewHandler(&slogjournal.Options{
		Level:        level,
		ReplaceGroup: toJournalKey,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			attr.Key = toJournalKey(attr.Key)
			return attr
		},
	})
}

// toJournalKey maps a key to the journal field alphabet of upper case letters, digits and underscores.
func toJournalKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		}
		return '_'
	}, key)
}

func underSystemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	// hierarchy-ID:controllers:path
	parts := strings.SplitN(strings.TrimSpace(string(content)), ":", 3)
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
