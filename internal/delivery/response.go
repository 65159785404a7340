package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string `json:"Status"`
	Message string `json:"Message"`
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage hides driver details behind a generic message for 500s.
func clientMessage(err error) string {
	if mapErrorToStatus(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}

// parseID reads an integer path parameter. On failure it writes a 400 and
// returns ok == false.
func parseID(c *gin.Context, param, entity string) (*int, bool) {
	idStr := c.Param(param)
	id, err := strconv.Atoi(idStr)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid "+entity+" ID format")
		return nil, false
	}
	return &id, true
}
