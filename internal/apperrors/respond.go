package apperrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const genericMessage = "Server error"

// Respond はエラーを JSON レスポンスに変換して返します。
// 500 系では原因エラーの内容を返さず、Error.Message のみを使います。
func Respond(c *gin.Context, err error) {
	status := Status(err)
	message := genericMessage

	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}

	c.AbortWithStatusJSON(status, gin.H{
		"error": message,
		"code":  Code(err),
	})
}

// Unauthenticated はログインが必要な API 用の 401 レスポンスを返します。
func Unauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Authentication required",
		"code":  Code(ErrUnauthenticated),
	})
}
