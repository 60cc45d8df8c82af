package apperrors

import (
	"fmt"
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок
жизненного цикла интервью.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrEntityNotFound - как ErrNotFound, но с именем сущности в сообщении.
func ErrEntityNotFound(entity string, err error) *AppError {
	return Wrap(err, CodeNotFound, entity, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidTransition - недопустимый переход статуса интервью (409).
// from/to попадают в Details, чтобы клиент видел, какой переход отклонен.
func ErrInvalidTransition(from, to string) *AppError {
	return New(
		CodeInvalidTransition,
		"interview",
		fmt.Sprintf("Status transition %q -> %q is not allowed", from, to),
		http.StatusConflict,
	).WithDetails(map[string]string{"from": from, "to": to})
}

// ErrPreconditionFailed - операция требует предварительного шага (412)
func ErrPreconditionFailed(domain, message string) *AppError {
	return New(CodePreconditionFailed, domain, message, http.StatusPreconditionFailed)
}

// ErrExternalService - сбой внешнего сервиса (oracle, SMTP и т.д.) (502)
func ErrExternalService(err error, service string) *AppError {
	return Wrap(err, CodeExternalServiceError, service, "External service call failed", http.StatusBadGateway)
}

// ErrQuestionOwnership - вопрос не принадлежит указанному интервью.
var ErrQuestionOwnership = New(
	CodeForbidden,
	"question",
	"Question does not belong to the specified interview",
	http.StatusForbidden,
)

// ErrInsufficientPermissions - пользователь пытается работать с чужим ресурсом.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrCompanyNameTaken - имя компании уже занято.
var ErrCompanyNameTaken = New(
	CodeConflict,
	"company",
	"Company name is already registered",
	http.StatusConflict,
)
