package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tailored-agentic-units/filestore/observability"
)

// SaveFile persists data under name. When a save handler is registered the
// call delegates to it and local disk is untouched; otherwise the file is
// written beneath the configured directory, creating missing directories with
// mode 0750 on the first write. The write fully replaces any existing file.
func (s *FileStore) SaveFile(ctx context.Context, name string, data []byte) error {
	dir, ready, saveH, readH := s.snapshot()
	if dir == "" && (saveH == nil || readH == nil) {
		return fmt.Errorf("%w: save %q", ErrNotEnabled, name)
	}

	if saveH != nil {
		if err := saveH.Save(ctx, name, data); err != nil {
			s.emitError(ctx, "save", name, err)
			return err
		}
		s.emit(ctx, EventSave, observability.LevelVerbose, map[string]any{"name": name, "bytes": len(data), "handler": true})
		return nil
	}

	if err := s.writeLocal(dir, ready, name, data); err != nil {
		s.emitError(ctx, "save", name, err)
		return err
	}
	s.emit(ctx, EventSave, observability.LevelVerbose, map[string]any{"name": name, "bytes": len(data), "handler": false})
	return nil
}

// ReadFile retrieves the contents stored under name. When a read handler is
// registered the call delegates to it; otherwise the file is read from the
// configured directory. A missing file reports ErrNotFound.
func (s *FileStore) ReadFile(ctx context.Context, name string) ([]byte, error) {
	dir, _, saveH, readH := s.snapshot()
	if dir == "" && (saveH == nil || readH == nil) {
		return nil, fmt.Errorf("%w: read %q", ErrNotEnabled, name)
	}

	if readH != nil {
		data, err := readH.Read(ctx, name)
		if err != nil {
			s.emitError(ctx, "read", name, err)
			return nil, err
		}
		s.emit(ctx, EventRead, observability.LevelVerbose, map[string]any{"name": name, "bytes": len(data), "handler": true})
		return data, nil
	}

	data, err := s.readLocal(dir, name)
	if err != nil {
		s.emitError(ctx, "read", name, err)
		return nil, err
	}
	s.emit(ctx, EventRead, observability.LevelVerbose, map[string]any{"name": name, "bytes": len(data), "handler": false})
	return data, nil
}

func (s *FileStore) writeLocal(dir string, ready bool, name string, data []byte) error {
	rel, err := cleanName(name)
	if err != nil {
		return err
	}

	if !ready {
		if err := ensureDir(dir); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrSaveFailed, name, err)
		}
		s.markReady(dir)
	}

	path := filepath.Join(dir, filepath.FromSlash(rel))
	parent := filepath.Dir(path)
	if parent != filepath.Clean(dir) {
		if err := ensureDir(parent); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrSaveFailed, name, err)
		}
	}

	tmp, err := os.CreateTemp(parent, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSaveFailed, name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", ErrSaveFailed, name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", ErrSaveFailed, name, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", ErrSaveFailed, name, err)
	}
	return nil
}

func (s *FileStore) readLocal(dir, name string) ([]byte, error) {
	rel, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFailed, name, err)
	}
	return data, nil
}

func (s *FileStore) emit(ctx context.Context, typ observability.EventType, level observability.Level, data map[string]any) {
	s.observer.OnEvent(ctx, observability.Event{
		Type:      typ,
		Level:     level,
		Timestamp: time.Now(),
		Source:    "store.FileStore",
		Data:      data,
	})
}

func (s *FileStore) emitError(ctx context.Context, op, name string, err error) {
	s.observer.OnEvent(ctx, observability.Event{
		Type:      EventError,
		Level:     observability.LevelError,
		Timestamp: time.Now(),
		Source:    "store.FileStore",
		Data:      map[string]any{"op": op, "name": name, "error": err.Error()},
	})
}
