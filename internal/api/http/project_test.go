package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/biased-framework/go-service/internal/project"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWelcome(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		meta project.Metadata
		want string
	}{
		{
			name: "placeholders",
			meta: project.New(project.NamePlaceholder),
			want: `{"message":"Welcome to {{PROJECT_NAME}}","problem":"{{PROJECT_PROBLEM}}","personas":"{{USER_PERSONAS}}"}`,
		},
		{
			name: "resolved name",
			meta: project.New("Acme"),
			want: `{"message":"Welcome to Acme","problem":"{{PROJECT_PROBLEM}}","personas":"{{USER_PERSONAS}}"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			NewProjectHandler(tc.meta).RegisterRoutes(router)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.want, rr.Body.String())
		})
	}
}

func TestWelcomeHead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	NewProjectHandler(project.New("Acme")).RegisterRoutes(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodHead, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestWelcomeUnknownPath(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewProjectHandler(project.New("Acme")).RegisterRoutes(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/about", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
