package magentodomain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrRemoteFetch = errors.New("magento: remote request failed")
	ErrNotFound    = errors.New("magento: resource not found")
)

// ErrorResponse é o corpo de erro padrão da API REST do Magento.
// Parameters pode ser uma lista (placeholders %1, %2...) ou um objeto (placeholders %name).
type ErrorResponse struct {
	Message    string `json:"message"`
	Parameters any    `json:"parameters,omitempty"`
}

// Text substitui os placeholders da mensagem pelos parâmetros
func (e *ErrorResponse) Text() string {
	message := e.Message

	switch params := e.Parameters.(type) {
	case []any:
		for i, value := range params {
			message = strings.ReplaceAll(message, fmt.Sprintf("%%%d", i+1), fmt.Sprint(value))
		}
	case map[string]any:
		for key, value := range params {
			message = strings.ReplaceAll(message, "%"+key, fmt.Sprint(value))
		}
	}

	return message
}

// RemoteError representa uma resposta não 2xx ou uma falha de transporte ao falar com o Magento
type RemoteError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("magento %s %s: %s", e.Method, e.Path, e.Message)
	}
	return fmt.Sprintf("magento %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func (e *RemoteError) Is(target error) bool {
	switch target {
	case ErrRemoteFetch:
		return true
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
