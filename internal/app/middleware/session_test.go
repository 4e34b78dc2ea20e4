package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"rsvp-http-service/internal/domain/services"
)

func newProtectedRouter(store services.InterfaceSessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	protected := r.Group("/")
	protected.Use(RequireAdminSession(store))
	protected.GET("/data", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireAdminSessionTokenSources(t *testing.T) {
	r := newProtectedRouter(&services.StaticTokenStore{Token: "sekrit"})

	tests := []struct {
		name    string
		prepare func(req *http.Request)
		status  int
	}{
		{
			name: "Cookie中的令牌",
			prepare: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sekrit"})
			},
			status: http.StatusOK,
		},
		{
			name: "Authorization Bearer令牌",
			prepare: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer sekrit")
			},
			status: http.StatusOK,
		},
		{
			name: "Authorization裸令牌",
			prepare: func(req *http.Request) {
				req.Header.Set("Authorization", "sekrit")
			},
			status: http.StatusOK,
		},
		{
			name: "厂商头中的令牌",
			prepare: func(req *http.Request) {
				req.Header.Set(AdminTokenHeader, "sekrit")
			},
			status: http.StatusOK,
		},
		{
			name: "Cookie优先于Authorization头",
			prepare: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sekrit"})
				req.Header.Set("Authorization", "Bearer wrong")
			},
			status: http.StatusOK,
		},
		{
			name:    "无任何令牌",
			prepare: func(req *http.Request) {},
			status:  http.StatusUnauthorized,
		},
		{
			name: "错误的令牌",
			prepare: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sekriT"})
			},
			status: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/data", nil)
			tt.prepare(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Errorf("status = %d, 期望 %d, body=%s", w.Code, tt.status, w.Body.String())
			}
		})
	}
}

func TestRequireAdminSessionFailsClosedWithoutSecret(t *testing.T) {
	// 服务端未配置密钥时拒绝所有受保护请求，返回500而不是401
	r := newProtectedRouter(&services.StaticTokenStore{Token: ""})

	req := httptest.NewRequest(http.MethodGet, "/data", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "guessed-value"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, 期望 500", w.Code)
	}
}
