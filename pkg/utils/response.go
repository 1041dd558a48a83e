package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/Stevensbe/system-procon-sub001/pkg/errors"
	"github.com/Stevensbe/system-procon-sub001/pkg/types"
)

type HttpResponse struct {
	Status     bool              `json:"status"`
	Body       interface{}       `json:"body,omitempty"`
	Message    string            `json:"message"`
	Pagination *types.Pagination `json:"pagination,omitempty"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

func SuccessListResponse(ctx echo.Context, body interface{}, message string, total uint64, page, limit int) error {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + uint64(limit) - 1) / uint64(limit))
	}
	return ctx.JSON(http.StatusOK, &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
		Pagination: &types.Pagination{
			TotalCount: total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	})
}

// ErrorResponse traduz a taxonomia de erros do domínio para códigos HTTP.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := "Erro interno do servidor"

	var httpErr *apperrors.HttpError
	var inputErr *apperrors.InvalidInputError

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
	case errors.As(err, &inputErr):
		code = http.StatusBadRequest
		message = inputErr.Message
	case errors.Is(err, apperrors.ErrProtocoloNaoEncontrado),
		errors.Is(err, apperrors.ErrTipoDocumentoNaoEncontrado),
		errors.Is(err, apperrors.ErrSetorNaoEncontrado),
		errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperrors.ErrConflitoConcorrencia):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, apperrors.ErrTransicaoInvalida),
		errors.Is(err, apperrors.ErrSetorNaoTramita),
		errors.Is(err, apperrors.ErrTramitacaoRedundante),
		errors.Is(err, apperrors.ErrTipoDocumentoInativo):
		code = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, apperrors.ErrHistoricoCorrompido):
		// Falha de integridade nunca é mascarada: 500 e log em nível de erro.
		code = http.StatusInternalServerError
		message = err.Error()
	case errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrActorIDNotFoundInContext):
		code = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, apperrors.ErrBadRequest):
		code = http.StatusBadRequest
		message = err.Error()
	}

	if logger != nil && code >= http.StatusInternalServerError {
		logger.Error("erro não tratado na requisição", zap.Error(err))
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Message: message,
	})
}
