// Package encrypted persists settings in a single AES-256-GCM encrypted
// file, with the key generated on first use and stored alongside it.
package encrypted

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/qoocca/parent-pay/internal/ports"
)

const (
	storeDirMode  = 0o700
	storeFileMode = 0o600
	keyFileName   = ".settings.key"
	dataFileName  = "settings.enc"
	keySize       = 32
)

type Store struct {
	dataPath string
	key      []byte
	mu       sync.RWMutex
}

var _ ports.SettingsStore = (*Store)(nil)

// NewStore opens the encrypted store rooted at dir. It fails when the key
// cannot be created or read, or when an existing data file no longer
// decrypts; callers treat any error here as "secure backend unavailable".
func NewStore(dir string) (*Store, error) {
	dir = filepath.Clean(dir)
	if err := os.MkdirAll(dir, storeDirMode); err != nil {
		return nil, fmt.Errorf("create settings directory: %w", err)
	}

	key, err := loadOrCreateKey(filepath.Join(dir, keyFileName))
	if err != nil {
		return nil, err
	}

	store := &Store{dataPath: filepath.Join(dir, dataFileName), key: key}
	if _, err := store.read(); err != nil {
		return nil, fmt.Errorf("verify settings file: %w", err)
	}

	return store, nil
}

func (s *Store) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values, err := s.read()
	if err != nil {
		return "", false, err
	}

	value, ok := values[key]
	return value, ok, nil
}

func (s *Store) Put(values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read()
	if err != nil {
		return err
	}
	for key, value := range values {
		current[key] = value
	}

	return s.write(current)
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.dataPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear encrypted settings: %w", err)
	}

	return nil
}

func (s *Store) read() (map[string]string, error) {
	ciphertext, err := os.ReadFile(s.dataPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read encrypted settings: %w", err)
	}

	plaintext, err := s.decrypt(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decrypt settings: %w", err)
	}

	values := map[string]string{}
	if err := json.Unmarshal(plaintext, &values); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	return values, nil
}

func (s *Store) write(values map[string]string) error {
	plaintext, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	ciphertext, err := s.encrypt(plaintext)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.dataPath), ".settings-*.enc.tmp")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(ciphertext); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp settings file: %w", err)
	}
	if err := tmp.Chmod(storeFileMode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp settings file: %w", err)
	}

	if err := os.Rename(tmpPath, s.dataPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace settings file: %w", err)
	}

	return nil
}

func (s *Store) encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func (s *Store) decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext shorter than nonce")
	}

	nonce, sealed := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, sealed, nil)
}

func loadOrCreateKey(path string) ([]byte, error) {
	if data, err := os.ReadFile(path); err == nil {
		key, decodeErr := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
		if decodeErr != nil || len(key) != keySize {
			return nil, fmt.Errorf("settings key file %q is corrupt", path)
		}
		return key, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read settings key: %w", err)
	}

	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate settings key: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(key)
	if err := os.WriteFile(path, []byte(encoded), storeFileMode); err != nil {
		return nil, fmt.Errorf("save settings key: %w", err)
	}

	return key, nil
}
