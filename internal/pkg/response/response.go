package response

import (
	"net/http"

	"meetingrooms/internal/pkg/apperror"
	"meetingrooms/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// exposeInternal controls whether internal error causes reach clients.
// It is switched off for production-like environments at startup.
var exposeInternal = true

func ExposeInternalErrors(expose bool) {
	exposeInternal = expose
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// FromError writes err using its apperror kind. Unknown errors become 500
// and are attached to the gin context so the request logger records them.
func FromError(c *gin.Context, err error) {
	e := apperror.From(err)

	if e.Kind == apperror.KindInternal {
		_ = c.Error(err)
		if exposeInternal && e.Err != nil {
			ErrorWithDetails(c, e.Status(), e.Code, e.Message, e.Err.Error())
			return
		}
		Error(c, e.Status(), e.Code, e.Message)
		return
	}

	if e.Details != nil {
		ErrorWithDetails(c, e.Status(), e.Code, e.Message, e.Details)
		return
	}
	Error(c, e.Status(), e.Code, e.Message)
}

// BindError reports a failed ShouldBindJSON / ShouldBindQuery.
func BindError(c *gin.Context, err error) {
	ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Fields(err))
}
