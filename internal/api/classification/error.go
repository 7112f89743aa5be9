package classification

import (
	"EcoSortAI/pkg/response"
	"net/http"
)

var (
	ErrImageDecode         = response.NewError(http.StatusBadRequest, "cannot decode image")
	ErrInferenceFailed     = response.NewError(http.StatusInternalServerError, "inference failed")
	ErrReportExport        = response.NewError(http.StatusInternalServerError, "report export failed")
	ErrLabelNotFound       = response.NewError(http.StatusNotFound, "unknown waste label")
	ErrInternalServerError = response.NewError(http.StatusInternalServerError, "internal server error")
)
