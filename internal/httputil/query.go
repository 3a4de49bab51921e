package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseCount safely parses and validates the count query parameter.
// It uses a default value of 1 and the count cannot exceed maxCount.
func ParseCount(c *gin.Context, maxCount int) (int, error) {
	countStr := c.DefaultQuery("count", "1")
	count, err := strconv.Atoi(countStr)
	if err != nil || count < 1 || count > maxCount {
		return 0, fmt.Errorf("invalid count parameter: must be between 1 and %d", maxCount)
	}
	return count, nil
}

// ParseOptionalInt parses an optional non-negative integer query parameter.
// A missing parameter returns defaultValue.
func ParseOptionalInt(c *gin.Context, name string, defaultValue int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid %s parameter: must be a non-negative integer", name)
	}
	return value, nil
}

// ParseBoolQuery parses an optional boolean query parameter. A missing parameter returns false.
func ParseBoolQuery(c *gin.Context, name string) (bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s parameter: must be a boolean", name)
	}
	return value, nil
}
