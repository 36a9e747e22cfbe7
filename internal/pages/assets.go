package pages

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-portal/internal/apperrors"
)

// Assets はルート表に無い GET/HEAD を dir 配下の公開ファイルとして返します。
// 該当ファイルが無ければ 404 を返します。
func Assets(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		if method == http.MethodGet || method == http.MethodHead {
			// path.Clean で "../" を取り除いてから dir に連結する
			rel := path.Clean("/" + c.Request.URL.Path)
			full := filepath.Join(dir, filepath.FromSlash(rel))
			if info, err := os.Stat(full); err == nil && info.Mode().IsRegular() {
				c.File(full)
				return
			}
		}
		apperrors.Respond(c, apperrors.New(apperrors.ErrNotFound, "Not found"))
	}
}
