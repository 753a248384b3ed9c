package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode maps APP_ENV onto gin's mode. Anything other than production or
// test keeps debug mode, which logs registered routes at startup.
func SetGinMode(env string) {
	switch env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
}
