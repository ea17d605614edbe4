package models

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gin-gonic/gin"
)

func Test_Heartbeat__should_return_correct_message(t *testing.T) {
	w := httptest.NewRecorder()
	_, testRouter := gin.CreateTestContext(w)

	router := BaseRouter{}
	testRouter.GET("/test", router.Heartbeat)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	testRouter.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "request to /test received")
	assert.Contains(t, body, "\"status\":\"OK\"")
}
