package tooling

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento"
	magentodomain "github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/domain"
	"github.com/vfg2006/magento-reporting-api/internal/domain"
	"github.com/vfg2006/magento-reporting-api/internal/usecases/reporting"
	"github.com/vfg2006/magento-reporting-api/pkg/apiErrors"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrInvalidArguments = errors.New("invalid arguments")
)

// ToolError é o erro de uma chamada de ferramenta já classificado com o código da API
type ToolError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Tool    string // Ferramenta chamada
	Details string // Detalhes adicionais
}

func (e *ToolError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

func NewToolError(tool string, err error) *ToolError {
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return toolErr
	}

	return &ToolError{
		Err:  err,
		Code: classify(err),
		Tool: tool,
	}
}

// classify mapeia a taxonomia de erros para os códigos de apiErrors.
// A ordem importa: limite de paginação e não encontrado vêm antes da falha remota genérica.
func classify(err error) string {
	switch {
	case errors.Is(err, ErrUnknownOperation):
		return apiErrors.ErrUnknownOperation
	case errors.Is(err, ErrInvalidArguments), errors.Is(err, reporting.ErrCountryRequired):
		return apiErrors.ErrInvalidRequest
	case errors.Is(err, domain.ErrInvalidDateExpression):
		return apiErrors.ErrInvalidDateExpression
	case errors.Is(err, magento.ErrOrderNotFound):
		return apiErrors.ErrOrderNotFound
	case errors.Is(err, magento.ErrCustomerNotFound):
		return apiErrors.ErrCustomerNotFound
	case errors.Is(err, magento.ErrProductNotFound):
		return apiErrors.ErrProductNotFound
	case errors.Is(err, magento.ErrPaginationLimitExceeded):
		return apiErrors.ErrPaginationLimitExceeded
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return apiErrors.ErrCommunication
	case errors.Is(err, magentodomain.ErrRemoteFetch):
		return apiErrors.ErrExternalService
	default:
		return apiErrors.ErrInternalServer
	}
}
