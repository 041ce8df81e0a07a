package response

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, GeneralResponse{
		Succeeded: code < 400,
		Code:      code,
		Message:   message,
		Data:      data,
		Errors:    errors,
	})
}

func RespondPaged(c *gin.Context, code int, message string, data interface{}, meta PageMeta) {
	c.JSON(code, GeneralResponse{
		Succeeded: code < 400,
		Code:      code,
		Message:   message,
		Data:      data,
		PageMeta:  &meta,
	})
}

// ParsePagination reads pageNumber/pageSize query params, falling back to
// 1 and 10 when absent or non-numeric.
func ParsePagination(c *gin.Context) (pageNumber, pageSize int) {
	pageNumber = 1
	pageSize = 10

	if v, err := strconv.Atoi(c.Query("pageNumber")); err == nil && v > 0 {
		pageNumber = v
	}
	if v, err := strconv.Atoi(c.Query("pageSize")); err == nil && v > 0 {
		pageSize = v
	}
	return pageNumber, pageSize
}

func CalculateTotalPages(totalRecords int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalRecords) / float64(pageSize)))
}

// NewPageMeta builds page metadata for a listing response.
func NewPageMeta(pageNumber, pageSize int, totalRecords int64) PageMeta {
	return PageMeta{
		PageNumber:   pageNumber,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
		TotalPages:   CalculateTotalPages(totalRecords, pageSize),
	}
}
