package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// FileStore keeps all keys in a single YAML document on disk.
// Writes go through a temp file + rename so readers never see a partial file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by path. The file is created on first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return "", err
	}
	v, ok := data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	data[key] = value
	return s.write(data)
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return s.write(data)
}

// Watch calls fn whenever the value of key changes on disk, including
// changes made by other processes. It returns once the watcher is set up;
// watching stops when ctx is done.
func (s *FileStore) Watch(ctx context.Context, key string, fn func(value string, ok bool)) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory: rename-based writes replace the file inode.
	if err := w.Add(dir); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	last, lastOK := s.lookup(key)
	name := filepath.Clean(s.path)

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, open := <-w.Events:
				if !open {
					return
				}
				if filepath.Clean(ev.Name) != name {
					continue
				}
				v, ok := s.lookup(key)
				if v == last && ok == lastOK {
					continue
				}
				last, lastOK = v, ok
				fn(v, ok)
			case _, open := <-w.Errors:
				if !open {
					return
				}
			}
		}
	}()

	return nil
}

func (s *FileStore) lookup(key string) (string, bool) {
	v, err := s.Get(context.Background(), key)
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *FileStore) read() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	data := map[string]string{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode session file %s: %w", s.path, err)
	}
	return data, nil
}

func (s *FileStore) write(data map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	raw, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}
