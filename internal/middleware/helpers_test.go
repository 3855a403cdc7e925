package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/lukaszlop/ketoggler/internal/types"
)

type stubValidator map[string]string

func (s stubValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	sub, ok := s[token]
	if !ok {
		return nil, errors.New("bad token")
	}
	return &types.TokenClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: sub}}, nil
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/whoami", func(c *gin.Context) {
		id, _ := UserID(c)
		c.String(http.StatusOK, id)
	})
	return r
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
