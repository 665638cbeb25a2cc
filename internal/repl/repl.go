package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/heysubinoy/pitara/internal/store"
	"github.com/heysubinoy/pitara/pkg/kv"
)

// Session is an interactive line-oriented shell over a kv.Store.
// Input and output are plain io interfaces so sessions are scriptable
// in tests.
type Session struct {
	store kv.Store
	in    io.Reader
	out   io.Writer
	log   *logrus.Logger
}

// New creates a session. log may not be nil; pass a logger with the
// desired level (operation logs are emitted at debug).
func New(st kv.Store, in io.Reader, out io.Writer, log *logrus.Logger) *Session {
	return &Session{store: st, in: in, out: out, log: log}
}

// Run reads commands line by line until exit or EOF.
func (s *Session) Run() error {
	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, "pitara> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if s.Exec(scanner.Text()) {
			return nil
		}
	}
}

// Exec runs a single command line and returns true when the session
// should end. Blank lines are ignored.
func (s *Session) Exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	command := fields[0]
	args := fields[1:]

	switch command {
	case "set":
		s.handleSet(line, args)
	case "get":
		s.handleGet(args)
	case "delete":
		s.handleDelete(args)
	case "keys":
		s.handleKeys()
	case "stats":
		s.handleStats()
	case "help":
		s.printHelp()
	case "exit", "quit":
		return true
	default:
		fmt.Fprintf(s.out, "Unknown command: %s\n", command)
		s.printHelp()
	}
	return false
}

func (s *Session) handleSet(line string, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: set <key> <value>")
		return
	}
	key := args[0]

	// The value is everything after the key, spaces included.
	rest := strings.TrimLeft(line, " \t")
	rest = strings.TrimLeft(rest[len("set"):], " \t")
	value := strings.TrimLeft(rest[len(key):], " \t")

	if err := s.store.Set(key, value); err != nil {
		fmt.Fprintf(s.out, "Set failed: %v\n", err)
		return
	}
	s.log.WithFields(logrus.Fields{"key": key}).Debug("set")
	fmt.Fprintf(s.out, "Set '%s' = '%s'\n", key, value)
}

func (s *Session) handleGet(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: get <key>")
		return
	}
	key := args[0]

	value, found := s.store.Get(key)
	s.log.WithFields(logrus.Fields{"key": key, "found": found}).Debug("get")
	if !found {
		fmt.Fprintf(s.out, "Key '%s' not found\n", key)
		return
	}
	fmt.Fprintln(s.out, value)
}

func (s *Session) handleDelete(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: delete <key>")
		return
	}
	key := args[0]

	if err := s.store.Delete(key); err != nil {
		fmt.Fprintf(s.out, "Delete failed: %v\n", err)
		return
	}
	s.log.WithFields(logrus.Fields{"key": key}).Debug("delete")
	fmt.Fprintf(s.out, "Deleted '%s'\n", key)
}

func (s *Session) handleKeys() {
	lister, ok := s.store.(kv.KeyLister)
	if !ok {
		fmt.Fprintln(s.out, "This backend cannot list keys")
		return
	}
	keys := lister.Keys()
	for _, k := range keys {
		fmt.Fprintln(s.out, k)
	}
	fmt.Fprintf(s.out, "(%d keys)\n", len(keys))
}

func (s *Session) handleStats() {
	instrumented, ok := s.store.(*store.InstrumentedStore)
	if !ok {
		fmt.Fprintln(s.out, "Stats are not enabled for this store")
		return
	}
	m := instrumented.Metrics()
	fmt.Fprintf(s.out, "get:    %d ops, avg %s\n", m.GetCount, m.GetAvgLatency)
	fmt.Fprintf(s.out, "set:    %d ops, avg %s\n", m.SetCount, m.SetAvgLatency)
	fmt.Fprintf(s.out, "delete: %d ops, avg %s\n", m.DeleteCount, m.DeleteAvgLatency)
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "  set <key> <value>")
	fmt.Fprintln(s.out, "  get <key>")
	fmt.Fprintln(s.out, "  delete <key>")
	fmt.Fprintln(s.out, "  keys")
	fmt.Fprintln(s.out, "  stats")
	fmt.Fprintln(s.out, "  exit")
}
