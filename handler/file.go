package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cartoworks/geolog/core"
	"github.com/cartoworks/geolog/formatter"
)

// FileHandler appends formatted log entries to a file, creating parent
// directories as needed, with optional size-based rotation.
type FileHandler struct {
	mu              sync.Mutex
	filename        string
	file            *os.File
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	maxSize         int64
	maxBackups      int
	currentSize     int64
}

// FileConfig holds configuration for the file handler
type FileConfig struct {
	// Filename is the path to the log file; missing parent directories
	// are created
	Filename string
	// Formatter to use (default: PipeFormatter)
	Formatter formatter.Formatter
	// MaxSize is the maximum size in bytes before rotation (0 = no rotation)
	MaxSize int64
	// MaxBackups is the maximum number of rotated files to retain (0 = keep all)
	MaxBackups int
}

// NewFileHandler creates a new file handler. The file is opened in
// append mode so repeated executions accumulate into one logfile.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewPipeFormatter(formatter.Config{})
	}

	// Create intermediate directories if they don't exist
	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	h := &FileHandler{
		filename:    cfg.Filename,
		file:        file,
		formatter:   cfg.Formatter,
		maxSize:     cfg.MaxSize,
		maxBackups:  cfg.MaxBackups,
		currentSize: info.Size(),
	}

	// Cache WriterFormatter for the no-copy path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h, nil
}

// Filename returns the path this handler writes to
func (h *FileHandler) Filename() string {
	return h.filename
}

// Handle formats and appends an entry
func (h *FileHandler) Handle(entry *core.Entry) error {
	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.rotateIfNeeded(); err != nil {
		return err
	}

	n, err := h.file.Write(data)
	if err == nil {
		h.currentSize += int64(n)
	}
	return err
}

// rotateIfNeeded checks and performs rotation if needed
func (h *FileHandler) rotateIfNeeded() error {
	if h.maxSize <= 0 || h.currentSize < h.maxSize {
		return nil
	}
	return h.rotate()
}

// rotate renames the current file with a timestamp suffix and opens a
// fresh one
func (h *FileHandler) rotate() error {
	if err := h.file.Sync(); err != nil {
		return err
	}
	if err := h.file.Close(); err != nil {
		return err
	}

	timestamp := time.Now().Format("2006-01-02T15-04-05")
	rotatedName := fmt.Sprintf("%s.%s", h.filename, timestamp)

	if err := os.Rename(h.filename, rotatedName); err != nil {
		// If rename fails, try to reopen the original file
		file, openErr := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if openErr != nil {
			return fmt.Errorf("rotation failed: %v, reopen failed: %v", err, openErr)
		}
		h.file = file
		return err
	}

	if h.maxBackups > 0 {
		h.cleanupOldBackups()
	}

	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	h.file = file
	h.currentSize = 0
	return nil
}

// cleanupOldBackups removes old backup files based on MaxBackups
func (h *FileHandler) cleanupOldBackups() {
	dir := filepath.Dir(h.filename)
	base := filepath.Base(h.filename)

	pattern := filepath.Join(dir, base+".*")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return
	}

	var backups []string
	for _, match := range matches {
		if strings.HasPrefix(filepath.Base(match), base+".") {
			backups = append(backups, match)
		}
	}

	// Oldest first
	sort.Slice(backups, func(i, j int) bool {
		infoI, errI := os.Stat(backups[i])
		infoJ, errJ := os.Stat(backups[j])
		if errI != nil || errJ != nil {
			return false
		}
		return infoI.ModTime().Before(infoJ.ModTime())
	})

	if len(backups) > h.maxBackups {
		for _, file := range backups[:len(backups)-h.maxBackups] {
			if err := os.Remove(file); err != nil {
				return
			}
		}
	}
}

// Close syncs and closes the underlying file
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return nil
	}
	if err := h.file.Sync(); err != nil {
		_ = h.file.Close()
		h.file = nil
		return err
	}
	err := h.file.Close()
	h.file = nil
	return err
}
