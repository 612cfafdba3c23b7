package service

import "errors"

// Ошибки сервисного слоя. HTTP-слой отображает их в статусы, сами сервисы
// кодов не знают.
var (
	// ErrValidation — отсутствующие или некорректные входные данные (400).
	ErrValidation = errors.New("validation error")

	// ErrEmailTaken — email уже зарегистрирован (400).
	ErrEmailTaken = errors.New("email already registered")

	// ErrBadCredentials — неверный пароль или код 2FA (401). Одна ошибка на
	// оба случая: ответ не должен раскрывать, какой фактор не прошёл.
	ErrBadCredentials = errors.New("invalid credentials")

	// ErrNotFound — запись не существует (404).
	ErrNotFound = errors.New("not found")

	// ErrForbidden — запись принадлежит другому пользователю (403).
	ErrForbidden = errors.New("forbidden")
)
