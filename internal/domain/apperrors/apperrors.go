package apperrors

import (
	"errors"
	"fmt"
)

// Códigos de rejeição do validador de respostas
const (
	CodeInvalidOption     = "InvalidOption"
	CodeTooManySelections = "TooManySelections"
	CodeInvalidValue      = "InvalidValue"
	CodeOutOfRange        = "OutOfRange"
	CodeTooLong           = "TooLong"
	CodeRequired          = "Required"
	CodePollClosed        = "PollClosed"
	CodeAlreadyVoted      = "AlreadyVoted"
)

// ErrNotFound indica que o recurso não existe. Resultado negativo
// definitivo, não deve ser repetido pelo chamador.
var ErrNotFound = errors.New("recurso não encontrado")

// ValidationError representa uma resposta malformada ou fora da política da
// enquete. Mapeia para 4xx e é devolvido verbatim ao chamador.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidation cria um erro de validação com o código informado
func NewValidation(code, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// StateConflictError representa uma operação sobre uma enquete em estado
// incompatível (ex.: votar em enquete fechada). Mapeia para 409.
type StateConflictError struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewStateConflict cria um erro de conflito de estado
func NewStateConflict(code, format string, args ...interface{}) *StateConflictError {
	return &StateConflictError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsValidation extrai um ValidationError da cadeia de erros
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AsStateConflict extrai um StateConflictError da cadeia de erros
func AsStateConflict(err error) (*StateConflictError, bool) {
	var se *StateConflictError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
