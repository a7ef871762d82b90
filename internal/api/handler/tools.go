package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/magento-reporting-api/internal/domain"
	"github.com/vfg2006/magento-reporting-api/internal/usecases/tooling"
	"github.com/vfg2006/magento-reporting-api/pkg/apiErrors"
	"github.com/vfg2006/magento-reporting-api/pkg/log"
	"github.com/vfg2006/magento-reporting-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxRequestBodyBytes = 1 << 20

func ListTools(dispatcher tooling.Dispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteJSON(w, http.StatusOK, map[string]any{"tools": dispatcher.ListTools()})
	})
}

// CallTool atende POST /v1/tools/:name com corpo {request_id?, arguments}. Corpo vazio equivale a sem argumentos.
func CallTool(dispatcher tooling.Dispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")

		var request domain.ToolCallRequest
		if err := decodeBody(w, r, &request); err != nil {
			writeInvalidBody(w, r, "", request.RequestID, err)
			return
		}

		respondToolCall(w, r, dispatcher, "", request.RequestID, name, request.Arguments)
	})
}

// MCPCall atende POST /v1/mcp com corpo {request_id?, params:{name, arguments}}
func MCPCall(dispatcher tooling.Dispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.MCPRequest
		if err := decodeBody(w, r, &request); err != nil {
			writeInvalidBody(w, r, domain.MCPVersion, request.RequestID, err)
			return
		}

		name := strings.TrimSpace(request.Params.Name)
		if name == "" {
			writeInvalidBody(w, r, domain.MCPVersion, request.RequestID, errors.New("params.name is required"))
			return
		}

		respondToolCall(w, r, dispatcher, domain.MCPVersion, request.RequestID, name, request.Params.Arguments)
	})
}

func respondToolCall(w http.ResponseWriter, r *http.Request, dispatcher tooling.Dispatcher, mcpVersion, requestID, name string, args map[string]any) {
	requestID = ensureRequestID(requestID)
	ctx := r.Context()
	logger := log.ForContext(ctx).WithFields(log.Fields{"request_id": requestID, "tool": name})

	result, err := dispatcher.Call(ctx, name, args)

	response := domain.ToolCallResponse{
		MCPVersion: mcpVersion,
		RequestID:  requestID,
		Result:     result,
	}

	if err != nil {
		code := apiErrors.ErrInternalServer
		var toolErr *tooling.ToolError
		if errors.As(err, &toolErr) {
			code = toolErr.Code
		}

		if result == nil {
			response.Result = domain.NewErrorResult(err.Error())
		}
		response.Error = &domain.ToolCallError{Code: code, Message: err.Error()}

		logger.WithError(err).Warn("http: tool call returned error")
		apiErrors.WriteJSON(w, apiErrors.StatusFor(code), response)
		return
	}

	logger.Debug("http: tool call succeeded")
	apiErrors.WriteJSON(w, http.StatusOK, response)
}

func writeInvalidBody(w http.ResponseWriter, r *http.Request, mcpVersion, requestID string, err error) {
	requestID = ensureRequestID(requestID)
	message := "invalid request body: " + err.Error()

	log.ForContext(r.Context()).WithField("request_id", requestID).WithError(err).Warn("http: invalid tool call body")

	apiErrors.WriteJSON(w, apiErrors.StatusFor(apiErrors.ErrInvalidRequest), domain.ToolCallResponse{
		MCPVersion: mcpVersion,
		RequestID:  requestID,
		Result:     domain.NewErrorResult(message),
		Error:      &domain.ToolCallError{Code: apiErrors.ErrInvalidRequest, Message: message},
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	defer body.Close()

	err := json.NewDecoder(body).Decode(target)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func ensureRequestID(requestID string) string {
	if requestID != "" {
		return requestID
	}

	generated, err := utils.GenerateID()
	if err != nil {
		log.L.WithError(err).Warn("http: failed to generate request id")
		return ""
	}
	return generated
}
