package tooling

import (
	"context"
	"time"

	"github.com/vfg2006/magento-reporting-api/internal/domain"
	"github.com/vfg2006/magento-reporting-api/internal/usecases/lookup"
	"github.com/vfg2006/magento-reporting-api/internal/usecases/reporting"
	"github.com/vfg2006/magento-reporting-api/pkg/log"
	"github.com/vfg2006/magento-reporting-api/pkg/metrics"
	"github.com/vfg2006/magento-reporting-api/pkg/utils"
)

//go:generate mockgen -source=dispatcher.go -destination=mocks/mock_dispatcher.go -package=mocks

const (
	statusOK       = "ok"
	statusError    = "error"
	unknownToolTag = "unknown"
)

type Dispatcher interface {
	ListTools() []domain.ToolDescriptor
	Call(ctx context.Context, name string, args map[string]any) (*domain.ToolResult, error)
}

type handlerFunc func(ctx context.Context, args map[string]any) (any, error)

type tool struct {
	descriptor domain.ToolDescriptor
	handle     handlerFunc
}

type ToolDispatcher struct {
	reporter reporting.Reporter
	lookuper lookup.Lookuper
	tools    map[string]tool
	order    []string
}

func NewToolDispatcher(reporter reporting.Reporter, lookuper lookup.Lookuper) Dispatcher {
	d := &ToolDispatcher{
		reporter: reporter,
		lookuper: lookuper,
		tools:    make(map[string]tool),
	}

	for _, t := range d.catalog() {
		d.tools[t.descriptor.Name] = t
		d.order = append(d.order, t.descriptor.Name)
	}

	return d
}

// ListTools retorna os descritores na ordem de registro
func (d *ToolDispatcher) ListTools() []domain.ToolDescriptor {
	descriptors := make([]domain.ToolDescriptor, 0, len(d.order))
	for _, name := range d.order {
		descriptors = append(descriptors, d.tools[name].descriptor)
	}
	return descriptors
}

// Call executa a ferramenta e devolve sempre um ToolResult.
// Em caso de falha o erro classificado também é retornado para o transporte escolher o status HTTP.
func (d *ToolDispatcher) Call(ctx context.Context, name string, args map[string]any) (*domain.ToolResult, error) {
	logger := log.ForContext(ctx).WithField("tool", name)
	start := time.Now()

	t, ok := d.tools[name]
	if !ok {
		toolErr := &ToolError{
			Err:     ErrUnknownOperation,
			Code:    classify(ErrUnknownOperation),
			Tool:    name,
			Details: name,
		}
		logger.Warn("tooling: unknown tool requested")
		observe(unknownToolTag, statusError, start)
		return domain.NewErrorResult(toolErr.Error()), toolErr
	}

	if args == nil {
		args = map[string]any{}
	}

	payload, err := t.handle(ctx, args)
	if err != nil {
		toolErr := NewToolError(name, err)
		logger.WithError(err).WithField("code", toolErr.Code).Error("tooling: tool call failed")
		observe(name, statusError, start)
		return domain.NewErrorResult(toolErr.Error()), toolErr
	}

	text, err := utils.PrettyJson(payload)
	if err != nil {
		toolErr := NewToolError(name, err)
		logger.WithError(err).Error("tooling: failed to serialize tool result")
		observe(name, statusError, start)
		return domain.NewErrorResult(toolErr.Error()), toolErr
	}

	logger.WithField("duration_ms", time.Since(start).Milliseconds()).Debug("tooling: tool call completed")
	observe(name, statusOK, start)

	return domain.NewTextResult(text), nil
}

func observe(name, status string, start time.Time) {
	metrics.ToolCallsTotal.WithLabelValues(name, status).Inc()
	metrics.ToolCallDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
}
