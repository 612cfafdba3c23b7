package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
)

// keyLen — длина ключа для AES‑256 (в байтах).
const keyLen = 32

// ErrKeyUnavailable — файл ключа недоступен и не может быть создан.
var ErrKeyUnavailable = errors.New("encryption key unavailable")

// LoadOrCreateKey загружает ключ шифрования из файла или создаёт новый
// случайный при первом запуске. Существующий ключ никогда не перезаписывается:
// перегенерация сделала бы весь накопленный шифртекст нечитаемым.
//
// Создание идёт через O_EXCL, поэтому одновременный первый запуск нескольких
// процессов не породит два разных ключа — проигравший гонку перечитывает
// файл победителя.
func LoadOrCreateKey(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty key file path", ErrKeyUnavailable)
	}

	b, err := os.ReadFile(path)
	if err == nil {
		if len(b) != keyLen {
			return nil, fmt.Errorf("%w: unexpected key length %d", ErrKeyUnavailable, len(b))
		}
		return b, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrKeyUnavailable, err)
	}

	// первый запуск — создаём новый ключ
	key := make([]byte, keyLen)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyUnavailable, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, os.ErrExist) {
		// гонку выиграл другой процесс — берём его ключ
		b, rerr := os.ReadFile(path)
		if rerr != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyUnavailable, rerr)
		}
		if len(b) != keyLen {
			return nil, fmt.Errorf("%w: unexpected key length %d", ErrKeyUnavailable, len(b))
		}
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyUnavailable, err)
	}

	if _, err := f.Write(key); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrKeyUnavailable, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyUnavailable, err)
	}
	return key, nil
}
