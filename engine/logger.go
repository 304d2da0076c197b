package engine

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	defaultLogLines      = 1000
	defaultBatchSize     = 10
	defaultFlushInterval = 100 * time.Millisecond
)

// Logger keeps the last capacity lines in memory for the trace panel and
// mirrors every line to a file from a background writer.
type Logger struct {
	mu       sync.Mutex
	lines    []string
	capacity int
	head     int
	count    int

	filePath string
	file     *os.File
	ch       chan string
	done     chan struct{}
	closed   bool
}

func NewLogger(filePath string, capacity int) *Logger {
	if capacity <= 0 {
		capacity = defaultLogLines
	}

	l := &Logger{
		lines:    make([]string, capacity),
		capacity: capacity,
		filePath: filePath,
		ch:       make(chan string, 100),
		done:     make(chan struct{}),
	}

	if err := l.openFile(); err != nil {
		l.file = nil
	}

	go l.writer()

	return l
}

func (l *Logger) openFile() error {
	if l.filePath == "" {
		return nil
	}

	if dir := filepath.Dir(l.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(l.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return err
	}
	l.file = f
	return nil
}

func (l *Logger) Write(msg string) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	l.lines[l.head] = msg
	l.head = (l.head + 1) % l.capacity
	if l.count < l.capacity {
		l.count++
	}

	// drop the file copy rather than block the session
	select {
	case l.ch <- msg:
	default:
	}
}

// ReadAll returns the buffered lines, oldest first.
func (l *Logger) ReadAll() string {
	if l == nil {
		return ""
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.count == 0 {
		return ""
	}

	start := 0
	if l.count >= l.capacity {
		start = l.head
	}

	var sb strings.Builder
	for i := 0; i < l.count; i++ {
		idx := (start + i) % l.capacity
		if l.lines[idx] != "" {
			sb.WriteString(l.lines[idx])
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func (l *Logger) writer() {
	defer close(l.done)

	batch := make([]string, 0, defaultBatchSize)
	ticker := time.NewTicker(defaultFlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 || l.file == nil {
			batch = batch[:0]
			return
		}
		for _, msg := range batch {
			l.file.WriteString(msg + "\n")
		}
		batch = batch[:0]
	}

	for {
		select {
		case msg, ok := <-l.ch:
			if !ok {
				flush()
				return
			}
			batch = append(batch, msg)
			if len(batch) >= defaultBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

// Close flushes pending lines and closes the file.
func (l *Logger) Close() {
	if l == nil {
		return
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	close(l.ch)
	l.mu.Unlock()

	<-l.done

	if l.file != nil {
		l.file.Close()
	}
}
