package auth

import (
	"bytes"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"image/png"
	"io"
	"net/url"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// totpSecretSize — 20 байт энтропии, 32 символа base32.
const totpSecretSize = 20

// totpOpts — параметры проверки кода: шаг 30 секунд, шесть цифр,
// допуск ±1 шаг на рассинхронизацию часов.
var totpOpts = totp.ValidateOpts{
	Period:    30,
	Skew:      1,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// GenerateTOTPSecret выпускает новый base32-секрет для 2FA. Секрет выдаётся
// один раз при регистрации и дальше не меняется.
func GenerateTOTPSecret() (string, error) {
	b := make([]byte, totpSecretSize)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", err
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(b), nil
}

// ProvisioningURI собирает otpauth-ссылку для регистрации секрета
// в приложении-аутентификаторе.
func ProvisioningURI(secret, account, issuer string) string {
	v := url.Values{}
	v.Set("secret", secret)
	v.Set("issuer", issuer)
	v.Set("period", "30")
	v.Set("digits", "6")
	v.Set("algorithm", "SHA1")
	u := url.URL{
		Scheme:   "otpauth",
		Host:     "totp",
		Path:     "/" + issuer + ":" + account,
		RawQuery: v.Encode(),
	}
	return u.String()
}

// VerifyTOTP проверяет одноразовый код по секрету. Код, действительный на шаге
// T, принимается на T и T±1; повторное использование кода внутри окна здесь
// не отслеживается.
func VerifyTOTP(secret, code string) bool {
	return verifyTOTPAt(secret, code, time.Now().UTC())
}

func verifyTOTPAt(secret, code string, t time.Time) bool {
	ok, err := totp.ValidateCustom(code, secret, t, totpOpts)
	return err == nil && ok
}

// QRCodePNG рендерит otpauth-ссылку в PNG для показа при регистрации.
// Содержимое картинки сервер никак не интерпретирует.
func QRCodePNG(uri string, size int) ([]byte, error) {
	key, err := otp.NewKeyFromURL(uri)
	if err != nil {
		return nil, fmt.Errorf("parse provisioning uri: %w", err)
	}
	img, err := key.Image(size, size)
	if err != nil {
		return nil, fmt.Errorf("render qr: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
