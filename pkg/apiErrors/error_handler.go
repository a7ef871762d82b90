package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidToken = "AUTH_006" // Token inválido
	ErrExpiredToken = "AUTH_007" // Token expirado

	// Erros de validação
	ErrInvalidRequest        = "VAL_001" // Requisição ou argumentos inválidos
	ErrMissingRequiredData   = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat         = "VAL_003" // Formato de dados inválido
	ErrInvalidDateExpression = "VAL_004" // Expressão de data não reconhecida
	ErrMethodNotAllowed      = "VAL_005" // Método HTTP não suportado na rota

	// Recursos não encontrados
	ErrOrderNotFound    = "NF_001"
	ErrCustomerNotFound = "NF_002"
	ErrProductNotFound  = "NF_003"
	ErrRouteNotFound    = "NF_004"

	// Erros do dispatcher de ferramentas
	ErrUnknownOperation = "TOOL_001" // Ferramenta desconhecida

	// Erros do servidor
	ErrInternalServer          = "SRV_001" // Erro interno do servidor
	ErrExternalService         = "SRV_003" // Falha na API do Magento
	ErrCommunication           = "SRV_004" // Erro de comunicação
	ErrPaginationLimitExceeded = "SRV_005" // Limite de páginas excedido
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:            http.StatusUnauthorized,
	ErrExpiredToken:            http.StatusUnauthorized,
	ErrInvalidRequest:          http.StatusBadRequest,
	ErrMissingRequiredData:     http.StatusBadRequest,
	ErrInvalidFormat:           http.StatusBadRequest,
	ErrInvalidDateExpression:   http.StatusBadRequest,
	ErrMethodNotAllowed:        http.StatusMethodNotAllowed,
	ErrOrderNotFound:           http.StatusNotFound,
	ErrCustomerNotFound:        http.StatusNotFound,
	ErrProductNotFound:         http.StatusNotFound,
	ErrRouteNotFound:           http.StatusNotFound,
	ErrUnknownOperation:        http.StatusNotFound,
	ErrInternalServer:          http.StatusInternalServerError,
	ErrExternalService:         http.StatusBadGateway,
	ErrCommunication:           http.StatusServiceUnavailable,
	ErrPaginationLimitExceeded: http.StatusUnprocessableEntity,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP do código; códigos desconhecidos viram 500
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	WriteJSON(w, StatusFor(code), apiErr)
}

// WriteJSON serializa body com o status informado
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
