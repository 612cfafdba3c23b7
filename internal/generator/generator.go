// Package generator — криптостойкий генератор паролей по классам символов.
package generator

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const (
	// MinLength и MaxLength — границы, в которые зажимается запрошенная длина.
	MinLength = 4
	MaxLength = 128

	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	digitChars   = "0123456789"
	specialChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// ErrInvalidCharset — не включён ни один класс символов.
var ErrInvalidCharset = errors.New("no character classes enabled")

// Generate возвращает случайную строку указанной длины из объединения
// включённых классов. В результате гарантированно присутствует хотя бы один
// символ каждого включённого класса; все выборы делаются через crypto/rand.
func Generate(length int, upper, lower, digits, special bool) (string, error) {
	var classes []string
	if upper {
		classes = append(classes, upperChars)
	}
	if lower {
		classes = append(classes, lowerChars)
	}
	if digits {
		classes = append(classes, digitChars)
	}
	if special {
		classes = append(classes, specialChars)
	}
	if len(classes) == 0 {
		return "", ErrInvalidCharset
	}

	if length < MinLength {
		length = MinLength
	}
	if length > MaxLength {
		length = MaxLength
	}

	alphabet := strings.Join(classes, "")
	out := make([]byte, length)
	for i := range out {
		c, err := randByte(alphabet)
		if err != nil {
			return "", err
		}
		out[i] = c
	}

	// Добиваемся представительства каждого класса: по одному символу каждого
	// класса на различные случайные позиции.
	positions, err := randPositions(length, len(classes))
	if err != nil {
		return "", err
	}
	for i, class := range classes {
		c, err := randByte(class)
		if err != nil {
			return "", err
		}
		out[positions[i]] = c
	}

	return string(out), nil
}

// randByte возвращает случайный символ строки charset.
func randByte(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// randPositions возвращает k различных случайных позиций из [0,length).
func randPositions(length, k int) ([]int, error) {
	idx := make([]int, length)
	for i := range idx {
		idx[i] = i
	}
	// частичный Fisher-Yates: достаточно первых k элементов
	for i := 0; i < k; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(length-i)))
		if err != nil {
			return nil, err
		}
		j := i + int(n.Int64())
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k], nil
}
