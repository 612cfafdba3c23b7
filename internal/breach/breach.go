// Package breach — клиент проверки пароля по базе утечек через k-анонимность:
// наружу уходит только префикс SHA-1 хэша, сверка суффиксов идёт локально.
package breach

import (
	"bufio"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultAPIURL — range-эндпоинт Have I Been Pwned.
const DefaultAPIURL = "https://api.pwnedpasswords.com/range"

const requestTimeout = 10 * time.Second

// ErrServiceUnavailable — сетевой сбой или не-200 ответ внешнего сервиса.
// Ошибка восстановимая: запрос можно повторить.
var ErrServiceUnavailable = errors.New("breach service unavailable")

// Client выполняет range-запросы к сервису утечек.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient создаёт клиент. Пустой baseURL означает DefaultAPIURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// Check сообщает, встречался ли пароль в известных утечках, и сколько раз.
// Сервису отправляются только первые 5 hex-символов SHA-1 дайджеста.
func (c *Client) Check(ctx context.Context, password string) (bool, int, error) {
	sum := sha1.Sum([]byte(password))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))
	prefix, suffix := digest[:5], digest[5:]

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+prefix, nil)
	if err != nil {
		return false, 0, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, 0, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, 0, fmt.Errorf("%w: unexpected status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	// ответ — строки вида SUFFIX:COUNT
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(parts[0], suffix) {
			count, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err != nil {
				count = 0
			}
			return true, count, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, 0, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	return false, 0, nil
}
