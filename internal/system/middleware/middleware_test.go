/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/ob-consent-enforcement/internal/system/config"
	"github.com/wso2/ob-consent-enforcement/internal/system/constants"
	"github.com/wso2/ob-consent-enforcement/internal/system/log"
	"github.com/wso2/ob-consent-enforcement/internal/system/utils"
)

func newRouter(middleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware...)
	router.GET("/echo", func(c *gin.Context) {
		correlationID, _ := c.Request.Context().Value(log.CorrelationIDKey).(string)
		c.JSON(http.StatusOK, gin.H{"client": utils.GetClientIDFromContext(c), "correlation": correlationID})
	})
	return router
}

func serve(router *gin.Engine, method string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/echo", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestClientIDMiddleware(t *testing.T) {
	router := newRouter(ClientIDMiddleware())

	w := serve(router, http.MethodGet, map[string]string{constants.ClientIDHeaderName: "client-1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"client":"client-1"`)

	w = serve(router, http.MethodGet, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_request")
}

func TestCorrelationIDMiddleware(t *testing.T) {
	router := newRouter(CorrelationIDMiddleware())

	t.Run("reuses the FAPI interaction ID", func(t *testing.T) {
		w := serve(router, http.MethodGet, map[string]string{constants.FapiInteractionIDHeader: "fapi-1"})
		assert.Equal(t, "fapi-1", w.Header().Get(constants.CorrelationIDHeaderName))
		assert.Contains(t, w.Body.String(), `"correlation":"fapi-1"`)
	})

	t.Run("generates one when absent", func(t *testing.T) {
		w := serve(router, http.MethodGet, nil)
		assert.True(t, utils.IsValidUUID(w.Header().Get(constants.CorrelationIDHeaderName)))
	})
}

func TestCORSMiddleware(t *testing.T) {
	cfg := config.CORSConfig{
		Enabled:        true,
		AllowedOrigins: []string{"https://tpp.example.com"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         600,
	}
	router := newRouter(CORSMiddleware(cfg))
	router.OPTIONS("/echo", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(router, http.MethodOptions, map[string]string{"Origin": "https://tpp.example.com"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://tpp.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "600", w.Header().Get("Access-Control-Max-Age"))

	w = serve(router, http.MethodGet, map[string]string{"Origin": "https://other.example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
