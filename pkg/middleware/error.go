package middleware

import (
	"fmt"
	"net/http"

	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/logging"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/store"
	"github.com/Nageswar548/Smart-Inventory-And-Sales-Management-System-with-AI-Demand-Forecasting/pkg/utils"
	"github.com/gin-gonic/gin"
)

// ErrorMiddleware answers with the last error a handler attached via c.Error
// when the handler did not write a response itself
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last()
		logging.Error("request failed", err.Err, logging.Fields{"path": c.Request.URL.Path})

		statusCode := 0
		if code, ok := err.Meta.(int); ok {
			statusCode = code
		}
		if statusCode == 0 {
			statusCode = store.StatusCode(err.Err)
		}

		switch statusCode {
		case http.StatusNotFound:
			utils.NotFoundResponse(c, err.Error())
		case http.StatusInternalServerError:
			utils.InternalServerErrorResponse(c, "Internal server error")
		default:
			utils.ErrorResponse(c, statusCode, err.Error())
		}
	}
}

// RecoveryMiddleware handles panics and prevents server crashes
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logging.Error("panic recovered", fmt.Errorf("%v", r), logging.Fields{"path": c.Request.URL.Path})
				utils.InternalServerErrorResponse(c, "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.NotFoundResponse(c, "Route not found")
	}
}
